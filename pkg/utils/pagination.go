package utils

// Page math shared by the catalogue, order, article and news collection
// endpoints. Pages are one-based; a page below one clamps to the first.

// CalculateTotalPages rounds the row count up to whole pages.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset converts a one-based page number into a row offset.
func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

package repository

// ListOptions carries the search/filter/ordering parameters accepted by the
// API collection endpoints. Field names are validated against per-repository
// whitelists before they reach SQL; unknown fields are ignored.
type ListOptions struct {
	Search  string            // substring match across declared searchable fields
	Filters map[string]string // exact match on declared filterable fields
	OrderBy string            // one of the declared orderable fields
	Desc    bool
	Limit   int
	Offset  int
}

package entity

// Product is never hard-deleted through the normal flow; delete operations
// flip Archived instead, which removes it from default list views only.
type Product struct {
	BaseSimple
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Discount    int16   `db:"discount"`
	CreatedByID int64   `db:"created_by_id"`
	Archived    bool    `db:"archived"`
}

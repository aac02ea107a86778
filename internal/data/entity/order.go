package entity

// Order references its products through order_products; ProductIDs carries
// them in insertion order when the repository loads the relation.
type Order struct {
	BaseSimple
	DeliveryAddress *string `db:"delivery_address"`
	Promocode       string  `db:"promocode"`
	UserID          int64   `db:"user_id"`
	ProductIDs      []int64 `db:"-"`
}

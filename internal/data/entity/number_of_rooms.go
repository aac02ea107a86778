package entity

type NumberOfRooms struct {
	BaseSimple
	Quantity int16 `db:"quantity"`
}

package entity

type Housing struct {
	BaseSimple
	HousingTypeID   int64    `db:"housing_type_id"`
	NumberOfRoomsID int64    `db:"number_of_rooms_id"`
	Address         *string  `db:"address"`
	Square          *float64 `db:"square"`

	HousingTypeTitle *string `db:"-"`
	RoomQuantity     *int16  `db:"-"`
}

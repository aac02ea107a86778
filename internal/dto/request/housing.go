package request

type HousingTypeRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,max=50"`
	Info  *string `json:"info,omitempty"`
}

type NumberOfRoomsRequest struct {
	Quantity int16 `json:"quantity" validate:"required,gt=0"`
}

type HousingRequest struct {
	HousingTypeID   int64    `json:"housing_type" validate:"required,gt=0"`
	NumberOfRoomsID int64    `json:"number_of_rooms" validate:"required,gt=0"`
	Address         *string  `json:"address,omitempty"`
	Square          *float64 `json:"square,omitempty" validate:"omitempty,gt=0"`
}

type HousingUpdateRequest struct {
	HousingTypeID   *int64   `json:"housing_type,omitempty" validate:"omitempty,gt=0"`
	NumberOfRoomsID *int64   `json:"number_of_rooms,omitempty" validate:"omitempty,gt=0"`
	Address         *string  `json:"address,omitempty"`
	Square          *float64 `json:"square,omitempty" validate:"omitempty,gt=0"`
}

package request

type OrderRequest struct {
	DeliveryAddress *string `json:"delivery_address,omitempty"`
	Promocode       string  `json:"promocode,omitempty" validate:"omitempty,max=20"`
	UserID          int64   `json:"user" validate:"required,gt=0"`
	ProductIDs      []int64 `json:"products,omitempty" validate:"dive,gt=0"`
}

type OrderUpdateRequest struct {
	DeliveryAddress *string  `json:"delivery_address,omitempty"`
	Promocode       *string  `json:"promocode,omitempty" validate:"omitempty,max=20"`
	UserID          *int64   `json:"user,omitempty" validate:"omitempty,gt=0"`
	ProductIDs      *[]int64 `json:"products,omitempty" validate:"omitempty,dive,gt=0"`
}

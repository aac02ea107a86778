package request

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gte=0,lt=1000000"`
	Discount    int16   `json:"discount,omitempty" validate:"gte=0,lte=100"`
	CreatedBy   *int64  `json:"created_by,omitempty" validate:"omitempty,gt=0"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0,lt=1000000"`
	Discount    *int16   `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
}

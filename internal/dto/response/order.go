package response

import (
	"time"

	"shop-portal/internal/data/entity"
)

type OrderResponse struct {
	ID              int64     `json:"id"`
	DeliveryAddress *string   `json:"delivery_address"`
	Promocode       string    `json:"promocode"`
	UserID          int64     `json:"user"`
	ProductIDs      []int64   `json:"products"`
	CreatedAt       time.Time `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	productIDs := order.ProductIDs
	if productIDs == nil {
		productIDs = []int64{}
	}

	return OrderResponse{
		ID:              order.ID,
		DeliveryAddress: order.DeliveryAddress,
		Promocode:       order.Promocode,
		UserID:          order.UserID,
		ProductIDs:      productIDs,
		CreatedAt:       order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = OrderToResponse(order)
	}
	return responses
}

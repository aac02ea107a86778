package response

import (
	"shop-portal/internal/data/entity"
)

// OrderExport is the wire shape cached and returned by the export endpoints.
// Key names are part of the export contract and must stay stable.
type OrderExport struct {
	PK              int64   `json:"pk"`
	DeliveryAddress *string `json:"delivery_address"`
	Promocode       string  `json:"promocode"`
	ProductIDs      []int64 `json:"products"`
	UserID          int64   `json:"user"`
}

type OrdersExportResponse struct {
	Orders []OrderExport `json:"orders"`
}

func OrderToExport(order *entity.Order) OrderExport {
	productIDs := order.ProductIDs
	if productIDs == nil {
		productIDs = []int64{}
	}

	return OrderExport{
		PK:              order.ID,
		DeliveryAddress: order.DeliveryAddress,
		Promocode:       order.Promocode,
		ProductIDs:      productIDs,
		UserID:          order.UserID,
	}
}

func OrdersToExport(orders []*entity.Order) []OrderExport {
	exports := make([]OrderExport, len(orders))
	for i, order := range orders {
		exports[i] = OrderToExport(order)
	}
	return exports
}

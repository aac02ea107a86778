package adaptor

import (
	"shop-portal/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Order   *OrderHandler
	Export  *ExportHandler
	Blog    *BlogHandler
	News    *NewsHandler
	Housing *HousingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, log),
		Order:   NewOrderHandler(service.Order, log),
		Export:  NewExportHandler(service.Export, log),
		Blog:    NewBlogHandler(service.Blog, log),
		News:    NewNewsHandler(service.News, log),
		Housing: NewHousingHandler(service.Housing, log),
	}
}

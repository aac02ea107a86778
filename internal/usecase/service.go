package usecase

import (
	"shop-portal/internal/data/repository"
	"shop-portal/internal/policy"
	"shop-portal/pkg/cache"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Order   OrderService
	Export  ExportService
	Blog    BlogService
	News    NewsService
	Housing HousingService
}

func NewService(
	repo *repository.Repository,
	gate *policy.Gate,
	store cache.Store,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, gate, config, log),
		Product: NewProductService(repo, gate, config, log),
		Order:   NewOrderService(repo, gate, log),
		Export:  NewExportService(repo, gate, store, config, log),
		Blog:    NewBlogService(repo, log),
		News:    NewNewsService(repo, log),
		Housing: NewHousingService(repo, log),
	}
}

package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/internal/dto/request"
	"shop-portal/internal/dto/response"
	"shop-portal/internal/policy"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context, req *request.PaginatedRequest, includeArchived bool) (*response.PaginatedResponse[response.ProductResponse], error)
	GetProductByID(ctx context.Context, productID int64) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID int64, req *request.ProductUpdateRequest) (*response.ProductResponse, error)
	ArchiveProduct(ctx context.Context, productID int64) error
	ListProducts(ctx context.Context, opts repository.ListOptions) ([]response.ProductResponse, int64, error)
}

type productService struct {
	repo   *repository.Repository
	gate   *policy.Gate
	config *utils.Config
	log    *zap.Logger
}

func NewProductService(
	repo *repository.Repository,
	gate *policy.Gate,
	config *utils.Config,
	log *zap.Logger,
) ProductService {
	return &productService{
		repo:   repo,
		gate:   gate,
		config: config,
		log:    log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context, req *request.PaginatedRequest, includeArchived bool) (*response.PaginatedResponse[response.ProductResponse], error) {
	products, err := s.repo.Product.FindAll(ctx, includeArchived, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("get products: %w", err)
	}

	total, err := s.repo.Product.CountAll(ctx, includeArchived)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("count products: %w", err)
	}

	return response.NewPaginatedResponse(response.ProductsToResponse(products), req.Page, req.PerPage, total), nil
}

func (s *productService) GetProductByID(ctx context.Context, productID int64) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", productID))
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	id := policy.FromContext(ctx)
	if err := s.gate.Authorize(id, policy.ActionCreate, policy.ResourceProduct, nil); err != nil {
		s.log.Warn("Product create denied", zap.Error(err))
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Product validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	if !hasTwoDecimalPlaces(req.Price) {
		return nil, NewValidationError(map[string]string{
			"price": "price must have at most two decimal places",
		})
	}

	// The recorded creator falls back to a configured account when the
	// payload does not name one.
	createdBy := s.config.Shop.FallbackUserID
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	} else if id.IsAuthenticated() {
		createdBy = id.ID
	}

	product := &entity.Product{
		BaseSimple:  entity.BaseSimple{CreatedAt: time.Now()},
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		CreatedByID: createdBy,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int64("created_by", createdBy),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Product update validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.Int64("product_id", productID))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	// Only the creator may update an existing product.
	id := policy.FromContext(ctx)
	if err := s.gate.Authorize(id, policy.ActionUpdate, policy.ResourceProduct, product); err != nil {
		s.log.Warn("Product update denied",
			zap.Int64("product_id", productID),
			zap.Error(err))
		return nil, ErrForbidden
	}

	if req.Price != nil && !hasTwoDecimalPlaces(*req.Price) {
		return nil, NewValidationError(map[string]string{
			"price": "price must have at most two decimal places",
		})
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Discount != nil {
		product.Discount = *req.Discount
	}

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", productID))
		return nil, fmt.Errorf("update product: %w", err)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// ArchiveProduct soft-deletes: the row stays and detail views keep working,
// but default listings no longer include it.
func (s *productService) ArchiveProduct(ctx context.Context, productID int64) error {
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.Int64("product_id", productID))
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	id := policy.FromContext(ctx)
	if err := s.gate.Authorize(id, policy.ActionDelete, policy.ResourceProduct, product); err != nil {
		s.log.Warn("Product archive denied",
			zap.Int64("product_id", productID),
			zap.Error(err))
		return ErrForbidden
	}

	if err := s.repo.Product.Archive(ctx, productID); err != nil {
		s.log.Error("Failed to archive product", zap.Error(err), zap.Int64("product_id", productID))
		return fmt.Errorf("archive product: %w", err)
	}

	return nil
}

// ListProducts serves the API collection endpoint. Unlike the catalogue
// page it includes archived products; callers narrow with the archived
// filter when they want live stock only.
func (s *productService) ListProducts(ctx context.Context, opts repository.ListOptions) ([]response.ProductResponse, int64, error) {
	products, total, err := s.repo.Product.List(ctx, opts)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return response.ProductsToResponse(products), total, nil
}

func hasTwoDecimalPlaces(price float64) bool {
	scaled := price * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

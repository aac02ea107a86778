package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/internal/dto/request"
	"shop-portal/internal/dto/response"
	"shop-portal/internal/policy"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	GetOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrderByID(ctx context.Context, orderID int64) (*response.OrderResponse, error)
	CreateOrder(ctx context.Context, req *request.OrderRequest) (*response.OrderResponse, error)
	UpdateOrder(ctx context.Context, orderID int64, req *request.OrderUpdateRequest) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, orderID int64) error
	ListOrders(ctx context.Context, opts repository.ListOptions) ([]response.OrderResponse, int64, error)
}

type orderService struct {
	repo *repository.Repository
	gate *policy.Gate
	log  *zap.Logger
}

func NewOrderService(
	repo *repository.Repository,
	gate *policy.Gate,
	log *zap.Logger,
) OrderService {
	return &orderService{
		repo: repo,
		gate: gate,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	id := policy.FromContext(ctx)
	if err := s.gate.Authorize(id, policy.ActionList, policy.ResourceOrder, nil); err != nil {
		return nil, ErrForbidden
	}

	orders, err := s.repo.Order.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("get orders: %w", err)
	}

	total, err := s.repo.Order.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	return response.NewPaginatedResponse(response.OrdersToResponse(orders), req.Page, req.PerPage, total), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (*response.OrderResponse, error) {
	id := policy.FromContext(ctx)

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}

	if err := s.gate.Authorize(id, policy.ActionView, policy.ResourceOrder, order); err != nil {
		s.log.Warn("Order view denied",
			zap.Int64("order_id", orderID),
			zap.Error(err))
		return nil, ErrForbidden
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.OrderRequest) (*response.OrderResponse, error) {
	id := policy.FromContext(ctx)
	if err := s.gate.Authorize(id, policy.ActionCreate, policy.ResourceOrder, nil); err != nil {
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Order validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	user, err := s.repo.User.FindByID(ctx, req.UserID)
	if err != nil {
		s.log.Error("Failed to find order user", zap.Error(err), zap.Int64("user_id", req.UserID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, NewValidationError(map[string]string{"user": "user does not exist"})
	}

	for _, productID := range req.ProductIDs {
		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			s.log.Error("Failed to find order product", zap.Error(err), zap.Int64("product_id", productID))
			return nil, fmt.Errorf("find product: %w", err)
		}
		if product == nil {
			return nil, NewValidationError(map[string]string{
				"products": fmt.Sprintf("product %d does not exist", productID),
			})
		}
	}

	order := &entity.Order{
		BaseSimple:      entity.BaseSimple{CreatedAt: time.Now()},
		DeliveryAddress: req.DeliveryAddress,
		Promocode:       req.Promocode,
		UserID:          req.UserID,
		ProductIDs:      req.ProductIDs,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.Int64("user_id", req.UserID))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.Int("products", len(order.ProductIDs)),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID int64, req *request.OrderUpdateRequest) (*response.OrderResponse, error) {
	id := policy.FromContext(ctx)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Order update validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}

	if err := s.gate.Authorize(id, policy.ActionUpdate, policy.ResourceOrder, order); err != nil {
		return nil, ErrForbidden
	}

	if req.DeliveryAddress != nil {
		order.DeliveryAddress = req.DeliveryAddress
	}
	if req.Promocode != nil {
		order.Promocode = *req.Promocode
	}
	if req.UserID != nil {
		user, err := s.repo.User.FindByID(ctx, *req.UserID)
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
		if user == nil {
			return nil, NewValidationError(map[string]string{"user": "user does not exist"})
		}
		order.UserID = *req.UserID
	}
	if req.ProductIDs != nil {
		for _, productID := range *req.ProductIDs {
			product, err := s.repo.Product.FindByID(ctx, productID)
			if err != nil {
				return nil, fmt.Errorf("find product: %w", err)
			}
			if product == nil {
				return nil, NewValidationError(map[string]string{
					"products": fmt.Sprintf("product %d does not exist", productID),
				})
			}
		}
		order.ProductIDs = *req.ProductIDs
	}

	if err := s.repo.Order.Update(ctx, order); err != nil {
		s.log.Error("Failed to update order", zap.Error(err), zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("update order: %w", err)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	id := policy.FromContext(ctx)

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.Int64("order_id", orderID))
		return fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}

	if err := s.gate.Authorize(id, policy.ActionDelete, policy.ResourceOrder, order); err != nil {
		return ErrForbidden
	}

	if err := s.repo.Order.Delete(ctx, orderID); err != nil {
		s.log.Error("Failed to delete order", zap.Error(err), zap.Int64("order_id", orderID))
		return fmt.Errorf("delete order: %w", err)
	}

	s.log.Info("Order deleted", zap.Int64("order_id", orderID))
	return nil
}

func (s *orderService) ListOrders(ctx context.Context, opts repository.ListOptions) ([]response.OrderResponse, int64, error) {
	id := policy.FromContext(ctx)
	if err := s.gate.Authorize(id, policy.ActionList, policy.ResourceOrder, nil); err != nil {
		return nil, 0, ErrForbidden
	}

	orders, total, err := s.repo.Order.List(ctx, opts)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return response.OrdersToResponse(orders), total, nil
}

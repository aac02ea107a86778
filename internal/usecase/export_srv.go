package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-portal/internal/data/repository"
	"shop-portal/internal/dto/response"
	"shop-portal/internal/policy"
	"shop-portal/pkg/cache"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

type ExportService interface {
	ExportUserOrders(ctx context.Context, userID int64) (*response.OrdersExportResponse, error)
	ExportAllOrders(ctx context.Context) (*response.OrdersExportResponse, error)
}

type exportService struct {
	repo   *repository.Repository
	gate   *policy.Gate
	cache  cache.Store
	config *utils.Config
	log    *zap.Logger
}

func NewExportService(
	repo *repository.Repository,
	gate *policy.Gate,
	store cache.Store,
	config *utils.Config,
	log *zap.Logger,
) ExportService {
	return &exportService{
		repo:   repo,
		gate:   gate,
		cache:  store,
		config: config,
		log:    log.With(zap.String("service", "export")),
	}
}

func exportCacheKey(userID int64) string {
	return fmt.Sprintf("user_%d_orders_data_export", userID)
}

// ExportUserOrders returns the order dump for the user in the path; any
// authenticated caller may export any user, there is no ownership check.
// Results are cached per subject user; writes do not invalidate the entry,
// so a fresh order may be absent from the export until the TTL lapses.
func (s *exportService) ExportUserOrders(ctx context.Context, userID int64) (*response.OrdersExportResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find export user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	key := exportCacheKey(userID)

	var cached []response.OrderExport
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("Export cache read failed, falling through to database",
			zap.Error(err),
			zap.String("key", key),
		)
	}
	if hit {
		s.log.Debug("Export served from cache",
			zap.String("key", key),
			zap.Int("orders", len(cached)),
		)
		return &response.OrdersExportResponse{Orders: cached}, nil
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load orders for export", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("export orders: %w", err)
	}

	exports := response.OrdersToExport(orders)

	ttl := time.Duration(s.config.Cache.ExportTTLSeconds) * time.Second
	if err := s.cache.Set(ctx, key, exports, ttl); err != nil {
		s.log.Warn("Failed to store export in cache",
			zap.Error(err),
			zap.String("key", key),
		)
	}

	s.log.Info("Export built from database",
		zap.Int64("user_id", userID),
		zap.Int("orders", len(exports)),
	)

	return &response.OrdersExportResponse{Orders: exports}, nil
}

// ExportAllOrders is the staff-wide dump covering every user, ordered by
// primary key. It is never cached.
func (s *exportService) ExportAllOrders(ctx context.Context) (*response.OrdersExportResponse, error) {
	id := policy.FromContext(ctx)
	if err := s.gate.Authorize(id, policy.ActionExport, policy.ResourceOrder, nil); err != nil {
		s.log.Warn("Staff export denied", zap.Error(err))
		return nil, ErrForbidden
	}

	orders, err := s.repo.Order.FindAllByPK(ctx)
	if err != nil {
		s.log.Error("Failed to load all orders for export", zap.Error(err))
		return nil, fmt.Errorf("export all orders: %w", err)
	}

	return &response.OrdersExportResponse{Orders: response.OrdersToExport(orders)}, nil
}

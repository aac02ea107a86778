package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/internal/dto/request"
	"shop-portal/internal/dto/response"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

const feedSize = 10

type NewsService interface {
	GetNews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.NewsResponse], error)
	GetNewsByID(ctx context.Context, newsID int64) (*response.NewsResponse, error)
	CreateNews(ctx context.Context, req *request.NewsRequest) (*response.NewsResponse, error)
	UpdateNews(ctx context.Context, newsID int64, req *request.NewsUpdateRequest) (*response.NewsResponse, error)
	DeleteNews(ctx context.Context, newsID int64) error
	GetFeed(ctx context.Context) ([]response.NewsFeedItem, error)
}

type newsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNewsService(repo *repository.Repository, log *zap.Logger) NewsService {
	return &newsService{
		repo: repo,
		log:  log.With(zap.String("service", "news")),
	}
}

// GetNews lists draft items only; the editorial index is a queue of what is
// not yet published, while published items surface through the feed.
func (s *newsService) GetNews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.NewsResponse], error) {
	published := false

	items, err := s.repo.News.FindAll(ctx, &published, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get news", zap.Error(err))
		return nil, fmt.Errorf("get news: %w", err)
	}

	total, err := s.repo.News.CountAll(ctx, &published)
	if err != nil {
		s.log.Error("Failed to count news", zap.Error(err))
		return nil, fmt.Errorf("count news: %w", err)
	}

	return response.NewPaginatedResponse(response.NewsListToResponse(items), req.Page, req.PerPage, total), nil
}

func (s *newsService) GetNewsByID(ctx context.Context, newsID int64) (*response.NewsResponse, error) {
	item, err := s.repo.News.FindByID(ctx, newsID)
	if err != nil {
		s.log.Error("Failed to get news item", zap.Error(err), zap.Int64("news_id", newsID))
		return nil, fmt.Errorf("get news item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("news %d: %w", newsID, ErrNotFound)
	}

	resp := response.NewsToResponse(item)
	return &resp, nil
}

func (s *newsService) CreateNews(ctx context.Context, req *request.NewsRequest) (*response.NewsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("News validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	item := &entity.News{
		BaseSimple:  entity.BaseSimple{CreatedAt: time.Now()},
		Title:       req.Title,
		Text:        req.Text,
		Description: req.Description,
		IsPublished: req.IsPublished,
	}

	if item.IsPublished {
		now := time.Now()
		item.PublishedAt = &now
	}

	if err := s.repo.News.Create(ctx, item); err != nil {
		s.log.Error("Failed to create news", zap.Error(err))
		return nil, fmt.Errorf("create news: %w", err)
	}

	s.log.Info("News created",
		zap.Int64("news_id", item.ID),
		zap.Bool("published", item.IsPublished),
	)

	resp := response.NewsToResponse(item)
	return &resp, nil
}

func (s *newsService) UpdateNews(ctx context.Context, newsID int64, req *request.NewsUpdateRequest) (*response.NewsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("News update validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	item, err := s.repo.News.FindByID(ctx, newsID)
	if err != nil {
		s.log.Error("Failed to find news", zap.Error(err), zap.Int64("news_id", newsID))
		return nil, fmt.Errorf("find news: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("news %d: %w", newsID, ErrNotFound)
	}

	if req.Title != nil {
		item.Title = req.Title
	}
	if req.Text != nil {
		item.Text = req.Text
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.IsPublished != nil {
		// The publish timestamp marks the first transition only.
		if *req.IsPublished && !item.IsPublished && item.PublishedAt == nil {
			now := time.Now()
			item.PublishedAt = &now
		}
		item.IsPublished = *req.IsPublished
	}

	if err := s.repo.News.Update(ctx, item); err != nil {
		s.log.Error("Failed to update news", zap.Error(err), zap.Int64("news_id", newsID))
		return nil, fmt.Errorf("update news: %w", err)
	}

	resp := response.NewsToResponse(item)
	return &resp, nil
}

func (s *newsService) DeleteNews(ctx context.Context, newsID int64) error {
	item, err := s.repo.News.FindByID(ctx, newsID)
	if err != nil {
		return fmt.Errorf("find news: %w", err)
	}
	if item == nil {
		return fmt.Errorf("news %d: %w", newsID, ErrNotFound)
	}

	if err := s.repo.News.Delete(ctx, newsID); err != nil {
		s.log.Error("Failed to delete news", zap.Error(err), zap.Int64("news_id", newsID))
		return fmt.Errorf("delete news: %w", err)
	}

	return nil
}

// GetFeed returns the ten most recently published items in their
// syndication shape.
func (s *newsService) GetFeed(ctx context.Context) ([]response.NewsFeedItem, error) {
	items, err := s.repo.News.FindLatest(ctx, feedSize)
	if err != nil {
		s.log.Error("Failed to get news feed", zap.Error(err))
		return nil, fmt.Errorf("get feed: %w", err)
	}

	return response.NewsListToFeed(items), nil
}

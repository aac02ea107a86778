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

type BlogService interface {
	GetArticles(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ArticleResponse], error)
	GetArticleByID(ctx context.Context, articleID int64) (*response.ArticleDetailResponse, error)
	CreateArticle(ctx context.Context, req *request.ArticleRequest) (*response.ArticleDetailResponse, error)
	UpdateArticle(ctx context.Context, articleID int64, req *request.ArticleUpdateRequest) (*response.ArticleDetailResponse, error)
	DeleteArticle(ctx context.Context, articleID int64) error

	GetAuthors(ctx context.Context) ([]response.AuthorResponse, error)
	CreateAuthor(ctx context.Context, req *request.AuthorRequest) (*response.AuthorResponse, error)
	DeleteAuthor(ctx context.Context, authorID int64) error

	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	GetTags(ctx context.Context) ([]response.TagResponse, error)
	CreateTag(ctx context.Context, req *request.TagRequest) (*response.TagResponse, error)
	DeleteTag(ctx context.Context, tagID int64) error
}

type blogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBlogService(repo *repository.Repository, log *zap.Logger) BlogService {
	return &blogService{
		repo: repo,
		log:  log.With(zap.String("service", "blog")),
	}
}

func (s *blogService) GetArticles(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ArticleResponse], error) {
	articles, err := s.repo.Article.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get articles", zap.Error(err))
		return nil, fmt.Errorf("get articles: %w", err)
	}

	total, err := s.repo.Article.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count articles", zap.Error(err))
		return nil, fmt.Errorf("count articles: %w", err)
	}

	return response.NewPaginatedResponse(response.ArticlesToResponse(articles), req.Page, req.PerPage, total), nil
}

func (s *blogService) GetArticleByID(ctx context.Context, articleID int64) (*response.ArticleDetailResponse, error) {
	article, err := s.repo.Article.FindByID(ctx, articleID)
	if err != nil {
		s.log.Error("Failed to get article", zap.Error(err), zap.Int64("article_id", articleID))
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %d: %w", articleID, ErrNotFound)
	}

	resp := response.ArticleToDetailResponse(article)
	return &resp, nil
}

func (s *blogService) CreateArticle(ctx context.Context, req *request.ArticleRequest) (*response.ArticleDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Article validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	author, err := s.repo.Author.FindByID(ctx, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		return nil, NewValidationError(map[string]string{"author": "author does not exist"})
	}

	category, err := s.repo.Category.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, NewValidationError(map[string]string{"category": "category does not exist"})
	}

	pubDate := time.Now()
	if req.PubDate != nil {
		pubDate, err = time.Parse(time.RFC3339, *req.PubDate)
		if err != nil {
			return nil, NewValidationError(map[string]string{"pub_date": "invalid datetime format"})
		}
	}

	article := &entity.Article{
		Title:      req.Title,
		Content:    req.Content,
		PubDate:    pubDate,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
	}

	if err := s.repo.Article.Create(ctx, article, req.TagIDs); err != nil {
		s.log.Error("Failed to create article", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.Info("Article created",
		zap.Int64("article_id", article.ID),
		zap.String("title", article.Title),
	)

	// Reload to pick up the joined author, category and tag names.
	created, err := s.repo.Article.FindByID(ctx, article.ID)
	if err != nil || created == nil {
		resp := response.ArticleToDetailResponse(article)
		return &resp, nil
	}

	resp := response.ArticleToDetailResponse(created)
	return &resp, nil
}

func (s *blogService) UpdateArticle(ctx context.Context, articleID int64, req *request.ArticleUpdateRequest) (*response.ArticleDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Article update validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	article, err := s.repo.Article.FindByID(ctx, articleID)
	if err != nil {
		s.log.Error("Failed to find article", zap.Error(err), zap.Int64("article_id", articleID))
		return nil, fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %d: %w", articleID, ErrNotFound)
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.PubDate != nil {
		pubDate, err := time.Parse(time.RFC3339, *req.PubDate)
		if err != nil {
			return nil, NewValidationError(map[string]string{"pub_date": "invalid datetime format"})
		}
		article.PubDate = pubDate
	}
	if req.AuthorID != nil {
		author, err := s.repo.Author.FindByID(ctx, *req.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("find author: %w", err)
		}
		if author == nil {
			return nil, NewValidationError(map[string]string{"author": "author does not exist"})
		}
		article.AuthorID = *req.AuthorID
	}
	if req.CategoryID != nil {
		category, err := s.repo.Category.FindByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("find category: %w", err)
		}
		if category == nil {
			return nil, NewValidationError(map[string]string{"category": "category does not exist"})
		}
		article.CategoryID = *req.CategoryID
	}

	var tagIDs []int64
	if req.TagIDs != nil {
		tagIDs = *req.TagIDs
	}

	if err := s.repo.Article.Update(ctx, article, tagIDs); err != nil {
		s.log.Error("Failed to update article", zap.Error(err), zap.Int64("article_id", articleID))
		return nil, fmt.Errorf("update article: %w", err)
	}

	updated, err := s.repo.Article.FindByID(ctx, articleID)
	if err != nil || updated == nil {
		resp := response.ArticleToDetailResponse(article)
		return &resp, nil
	}

	resp := response.ArticleToDetailResponse(updated)
	return &resp, nil
}

func (s *blogService) DeleteArticle(ctx context.Context, articleID int64) error {
	article, err := s.repo.Article.FindByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return fmt.Errorf("article %d: %w", articleID, ErrNotFound)
	}

	if err := s.repo.Article.Delete(ctx, articleID); err != nil {
		s.log.Error("Failed to delete article", zap.Error(err), zap.Int64("article_id", articleID))
		return fmt.Errorf("delete article: %w", err)
	}

	return nil
}

func (s *blogService) GetAuthors(ctx context.Context) ([]response.AuthorResponse, error) {
	authors, err := s.repo.Author.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get authors", zap.Error(err))
		return nil, fmt.Errorf("get authors: %w", err)
	}

	responses := make([]response.AuthorResponse, len(authors))
	for i, author := range authors {
		responses[i] = response.AuthorToResponse(author)
	}
	return responses, nil
}

func (s *blogService) CreateAuthor(ctx context.Context, req *request.AuthorRequest) (*response.AuthorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	author := &entity.Author{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		Name:       req.Name,
		Bio:        req.Bio,
	}

	if err := s.repo.Author.Create(ctx, author); err != nil {
		s.log.Error("Failed to create author", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create author: %w", err)
	}

	resp := response.AuthorToResponse(author)
	return &resp, nil
}

// DeleteAuthor removes the author; their articles go with them through the
// schema's cascade.
func (s *blogService) DeleteAuthor(ctx context.Context, authorID int64) error {
	author, err := s.repo.Author.FindByID(ctx, authorID)
	if err != nil {
		return fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		return fmt.Errorf("author %d: %w", authorID, ErrNotFound)
	}

	if err := s.repo.Author.Delete(ctx, authorID); err != nil {
		s.log.Error("Failed to delete author", zap.Error(err), zap.Int64("author_id", authorID))
		return fmt.Errorf("delete author: %w", err)
	}

	s.log.Info("Author deleted with cascading articles", zap.Int64("author_id", authorID))
	return nil
}

func (s *blogService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("get categories: %w", err)
	}

	responses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = response.CategoryToResponse(category)
	}
	return responses, nil
}

func (s *blogService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		Name:       req.Name,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create category: %w", err)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *blogService) DeleteCategory(ctx context.Context, categoryID int64) error {
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}

	if err := s.repo.Category.Delete(ctx, categoryID); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.Int64("category_id", categoryID))
		return fmt.Errorf("delete category: %w", err)
	}

	return nil
}

func (s *blogService) GetTags(ctx context.Context) ([]response.TagResponse, error) {
	tags, err := s.repo.Tag.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get tags", zap.Error(err))
		return nil, fmt.Errorf("get tags: %w", err)
	}

	responses := make([]response.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = response.TagToResponse(tag)
	}
	return responses, nil
}

func (s *blogService) CreateTag(ctx context.Context, req *request.TagRequest) (*response.TagResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	tag := &entity.Tag{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		Name:       req.Name,
	}

	if err := s.repo.Tag.Create(ctx, tag); err != nil {
		s.log.Error("Failed to create tag", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create tag: %w", err)
	}

	resp := response.TagToResponse(tag)
	return &resp, nil
}

func (s *blogService) DeleteTag(ctx context.Context, tagID int64) error {
	tag, err := s.repo.Tag.FindByID(ctx, tagID)
	if err != nil {
		return fmt.Errorf("find tag: %w", err)
	}
	if tag == nil {
		return fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
	}

	if err := s.repo.Tag.Delete(ctx, tagID); err != nil {
		s.log.Error("Failed to delete tag", zap.Error(err), zap.Int64("tag_id", tagID))
		return fmt.Errorf("delete tag: %w", err)
	}

	return nil
}

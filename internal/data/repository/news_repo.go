package repository

import (
	"context"
	"fmt"
	"strings"

	"shop-portal/internal/data/entity"
	"shop-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	FindByID(ctx context.Context, id int64) (*entity.News, error)
	FindAll(ctx context.Context, published *bool, limit, offset int) ([]*entity.News, error)
	CountAll(ctx context.Context, published *bool) (int64, error)
	FindLatest(ctx context.Context, limit int) ([]*entity.News, error)
	Update(ctx context.Context, news *entity.News) error
	Delete(ctx context.Context, id int64) error
}

type newsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNewsRepository(db database.PgxIface, log *zap.Logger) NewsRepository {
	return &newsRepository{
		db:  db,
		log: log.With(zap.String("repository", "news")),
	}
}

func (r *newsRepository) Create(ctx context.Context, news *entity.News) error {
	query := `
		INSERT INTO news (title, text, description, is_published, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		news.Title,
		news.Text,
		news.Description,
		news.IsPublished,
		news.PublishedAt,
		news.CreatedAt,
	).Scan(&news.ID)

	if err != nil {
		r.log.Error("Failed to create news", zap.Error(err))
		return fmt.Errorf("failed to create news: %w", err)
	}

	return nil
}

func (r *newsRepository) FindByID(ctx context.Context, id int64) (*entity.News, error) {
	query := `
		SELECT id, title, text, description, is_published, published_at, created_at
		FROM news
		WHERE id = $1
	`

	var news entity.News
	err := r.db.QueryRow(ctx, query, id).Scan(
		&news.ID,
		&news.Title,
		&news.Text,
		&news.Description,
		&news.IsPublished,
		&news.PublishedAt,
		&news.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find news by ID",
			zap.Error(err),
			zap.Int64("news_id", id),
		)
		return nil, fmt.Errorf("failed to find news: %w", err)
	}

	return &news, nil
}

func (r *newsRepository) FindAll(ctx context.Context, published *bool, limit, offset int) ([]*entity.News, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, title, text, description, is_published, published_at, created_at
		FROM news
	`)

	args := []any{}
	if published != nil {
		queryBuilder.WriteString(" WHERE is_published = $1")
		args = append(args, *published)
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all news",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find news: %w", err)
	}
	defer rows.Close()

	return scanNews(rows)
}

func (r *newsRepository) CountAll(ctx context.Context, published *bool) (int64, error) {
	query := `SELECT COUNT(*) FROM news`
	args := []any{}
	if published != nil {
		query += ` WHERE is_published = $1`
		args = append(args, *published)
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count news", zap.Error(err))
		return 0, fmt.Errorf("failed to count news: %w", err)
	}

	return total, nil
}

// FindLatest returns the newest published items for the feed.
func (r *newsRepository) FindLatest(ctx context.Context, limit int) ([]*entity.News, error) {
	query := `
		SELECT id, title, text, description, is_published, published_at, created_at
		FROM news
		WHERE is_published = TRUE AND published_at IS NOT NULL
		ORDER BY published_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find latest news", zap.Error(err))
		return nil, fmt.Errorf("failed to find latest news: %w", err)
	}
	defer rows.Close()

	return scanNews(rows)
}

func (r *newsRepository) Update(ctx context.Context, news *entity.News) error {
	query := `
		UPDATE news
		SET title = $2, text = $3, description = $4, is_published = $5, published_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		news.ID,
		news.Title,
		news.Text,
		news.Description,
		news.IsPublished,
		news.PublishedAt,
	)

	if err != nil {
		r.log.Error("Failed to update news",
			zap.Error(err),
			zap.Int64("news_id", news.ID),
		)
		return fmt.Errorf("failed to update news: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("news not found")
	}

	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete news",
			zap.Error(err),
			zap.Int64("news_id", id),
		)
		return fmt.Errorf("failed to delete news: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("news not found")
	}

	return nil
}

func scanNews(rows pgx.Rows) ([]*entity.News, error) {
	var items []*entity.News
	for rows.Next() {
		var news entity.News
		err := rows.Scan(
			&news.ID,
			&news.Title,
			&news.Text,
			&news.Description,
			&news.IsPublished,
			&news.PublishedAt,
			&news.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}
		items = append(items, &news)
	}

	return items, rows.Err()
}

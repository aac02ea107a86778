package repository

import (
	"context"
	"fmt"

	"shop-portal/internal/data/entity"
	"shop-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	FindByID(ctx context.Context, id int64) (*entity.Tag, error)
	FindAll(ctx context.Context) ([]*entity.Tag, error)
	Delete(ctx context.Context, id int64) error
}

type tagRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTagRepository(db database.PgxIface, log *zap.Logger) TagRepository {
	return &tagRepository{
		db:  db,
		log: log.With(zap.String("repository", "tag")),
	}
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	query := `INSERT INTO tags (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, tag.Name).Scan(&tag.ID); err != nil {
		r.log.Error("Failed to create tag", zap.Error(err), zap.String("name", tag.Name))
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return nil
}

func (r *tagRepository) FindByID(ctx context.Context, id int64) (*entity.Tag, error) {
	var tag entity.Tag
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM tags WHERE id = $1`, id).
		Scan(&tag.ID, &tag.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tag by ID", zap.Error(err), zap.Int64("tag_id", id))
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	return &tag, nil
}

func (r *tagRepository) FindAll(ctx context.Context) ([]*entity.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM tags ORDER BY name ASC`)
	if err != nil {
		r.log.Error("Failed to find all tags", zap.Error(err))
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}
	defer rows.Close()

	var tags []*entity.Tag
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, &tag)
	}

	return tags, rows.Err()
}

func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete tag", zap.Error(err), zap.Int64("tag_id", id))
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tag not found")
	}

	return nil
}

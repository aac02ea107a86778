package repository

import (
	"context"
	"fmt"

	"shop-portal/internal/data/entity"
	"shop-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	FindByID(ctx context.Context, id int64) (*entity.Author, error)
	FindAll(ctx context.Context) ([]*entity.Author, error)
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id int64) error
}

type authorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuthorRepository(db database.PgxIface, log *zap.Logger) AuthorRepository {
	return &authorRepository{
		db:  db,
		log: log.With(zap.String("repository", "author")),
	}
}

func (r *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	query := `INSERT INTO authors (name, bio) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRow(ctx, query, author.Name, author.Bio).Scan(&author.ID); err != nil {
		r.log.Error("Failed to create author", zap.Error(err), zap.String("name", author.Name))
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id int64) (*entity.Author, error) {
	var author entity.Author
	err := r.db.QueryRow(ctx,
		`SELECT id, name, bio FROM authors WHERE id = $1`, id).
		Scan(&author.ID, &author.Name, &author.Bio)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find author by ID", zap.Error(err), zap.Int64("author_id", id))
		return nil, fmt.Errorf("failed to find author: %w", err)
	}

	return &author, nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*entity.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, bio FROM authors ORDER BY name ASC`)
	if err != nil {
		r.log.Error("Failed to find all authors", zap.Error(err))
		return nil, fmt.Errorf("failed to find authors: %w", err)
	}
	defer rows.Close()

	var authors []*entity.Author
	for rows.Next() {
		var author entity.Author
		if err := rows.Scan(&author.ID, &author.Name, &author.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, &author)
	}

	return authors, rows.Err()
}

func (r *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	result, err := r.db.Exec(ctx,
		`UPDATE authors SET name = $2, bio = $3 WHERE id = $1`,
		author.ID, author.Name, author.Bio)
	if err != nil {
		r.log.Error("Failed to update author", zap.Error(err), zap.Int64("author_id", author.ID))
		return fmt.Errorf("failed to update author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("author not found")
	}

	return nil
}

// Delete removes the author; the schema cascades to the author's articles.
func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete author", zap.Error(err), zap.Int64("author_id", id))
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("author not found")
	}

	r.log.Info("Author deleted", zap.Int64("author_id", id))
	return nil
}

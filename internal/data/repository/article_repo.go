package repository

import (
	"context"
	"fmt"

	"shop-portal/internal/data/entity"
	"shop-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article, tagIDs []int64) error
	FindByID(ctx context.Context, id int64) (*entity.Article, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Article, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, article *entity.Article, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type articleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewArticleRepository(db database.PgxIface, log *zap.Logger) ArticleRepository {
	return &articleRepository{
		db:  db,
		log: log.With(zap.String("repository", "article")),
	}
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article, tagIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO articles (title, content, pub_date, author_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		article.Title,
		article.Content,
		article.PubDate,
		article.AuthorID,
		article.CategoryID,
	).Scan(&article.ID)

	if err != nil {
		r.log.Error("Failed to create article",
			zap.Error(err),
			zap.String("title", article.Title),
		)
		return fmt.Errorf("failed to create article: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			article.ID, tagID,
		)
		if err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *articleRepository) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
		SELECT a.id, a.title, a.content, a.pub_date, a.author_id, a.category_id,
		       au.name, c.name
		FROM articles a
		JOIN authors au ON au.id = a.author_id
		JOIN categories c ON c.id = a.category_id
		WHERE a.id = $1
	`

	var article entity.Article
	err := r.db.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.PubDate,
		&article.AuthorID,
		&article.CategoryID,
		&article.AuthorName,
		&article.CategoryName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find article by ID",
			zap.Error(err),
			zap.Int64("article_id", id),
		)
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	if err := r.loadTagNames(ctx, []*entity.Article{&article}); err != nil {
		return nil, err
	}

	return &article, nil
}

// FindAll returns articles ordered by title with the author join applied and
// content deferred: the column is never read for listings.
func (r *articleRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT a.id, a.title, a.pub_date, a.author_id, a.category_id,
		       au.name, c.name
		FROM articles a
		JOIN authors au ON au.id = a.author_id
		JOIN categories c ON c.id = a.category_id
		ORDER BY a.title ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all articles",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find articles: %w", err)
	}
	defer rows.Close()

	var articles []*entity.Article
	for rows.Next() {
		var article entity.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.PubDate,
			&article.AuthorID,
			&article.CategoryID,
			&article.AuthorName,
			&article.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	if err := r.loadTagNames(ctx, articles); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *articleRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		r.log.Error("Failed to count articles", zap.Error(err))
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return total, nil
}

func (r *articleRepository) Update(ctx context.Context, article *entity.Article, tagIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE articles
		SET title = $2, content = $3, author_id = $4, category_id = $5
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.AuthorID,
		article.CategoryID,
	)
	if err != nil {
		r.log.Error("Failed to update article",
			zap.Error(err),
			zap.Int64("article_id", article.ID),
		)
		return fmt.Errorf("failed to update article: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("article not found")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, article.ID); err != nil {
		return fmt.Errorf("failed to clear article tags: %w", err)
	}
	for _, tagID := range tagIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			article.ID, tagID,
		)
		if err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete article",
			zap.Error(err),
			zap.Int64("article_id", id),
		)
		return fmt.Errorf("failed to delete article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("article not found")
	}

	r.log.Info("Article deleted", zap.Int64("article_id", id))
	return nil
}

func (r *articleRepository) loadTagNames(ctx context.Context, articles []*entity.Article) error {
	if len(articles) == 0 {
		return nil
	}

	byID := make(map[int64]*entity.Article, len(articles))
	ids := make([]int64, len(articles))
	for i, article := range articles {
		byID[article.ID] = article
		ids[i] = article.ID
	}

	rows, err := r.db.Query(ctx,
		`SELECT at.article_id, t.name
		 FROM article_tags at
		 JOIN tags t ON t.id = at.tag_id
		 WHERE at.article_id = ANY($1)
		 ORDER BY t.name ASC`,
		ids,
	)
	if err != nil {
		r.log.Error("Failed to load article tags", zap.Error(err))
		return fmt.Errorf("failed to load article tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var articleID int64
		var tagName string
		if err := rows.Scan(&articleID, &tagName); err != nil {
			return fmt.Errorf("failed to scan article tag: %w", err)
		}
		if article, ok := byID[articleID]; ok {
			article.TagNames = append(article.TagNames, tagName)
		}
	}

	return rows.Err()
}

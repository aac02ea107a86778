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

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context, includeArchived bool, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context, includeArchived bool) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Archive(ctx context.Context, id int64) error
	List(ctx context.Context, opts ListOptions) ([]*entity.Product, int64, error)
}

// Field whitelists for the API collection endpoint.
var (
	productSearchFields = []string{"name", "description"}
	productFilterFields = map[string]string{
		"name":        "name",
		"description": "description",
		"price":       "price",
		"discount":    "discount",
		"archived":    "archived",
	}
	productOrderFields = map[string]string{
		"name":     "name",
		"price":    "price",
		"discount": "discount",
	}
)

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, discount, created_by_id,
		                      archived, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Discount,
		product.CreatedByID,
		product.Archived,
		product.CreatedAt,
	).Scan(&product.ID)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, discount, created_by_id,
		       archived, created_at
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Discount,
		&product.CreatedByID,
		&product.Archived,
		&product.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// FindAll returns products in the default ordering: name ascending, ties
// broken by price ascending. Archived products are excluded unless asked for.
func (r *productRepository) FindAll(ctx context.Context, includeArchived bool, limit, offset int) ([]*entity.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, description, price, discount, created_by_id,
		       archived, created_at
		FROM products
	`)

	if !includeArchived {
		queryBuilder.WriteString(" WHERE archived = FALSE")
	}
	queryBuilder.WriteString(" ORDER BY name ASC, price ASC LIMIT $1 OFFSET $2")

	rows, err := r.db.Query(ctx, queryBuilder.String(), limit, offset)
	if err != nil {
		r.log.Error("Failed to find all products",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *productRepository) CountAll(ctx context.Context, includeArchived bool) (int64, error) {
	query := `SELECT COUNT(*) FROM products`
	if !includeArchived {
		query += ` WHERE archived = FALSE`
	}

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return total, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, discount = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Discount,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found")
	}

	return nil
}

// Archive flips the archived flag; products are never hard-deleted through
// the normal flow.
func (r *productRepository) Archive(ctx context.Context, id int64) error {
	query := `UPDATE products SET archived = TRUE WHERE id = $1 AND archived = FALSE`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to archive product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("failed to archive product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already archived")
	}

	r.log.Info("Product archived", zap.Int64("product_id", id))
	return nil
}

// List serves the API collection endpoint with substring search, exact
// filters and ordering on whitelisted fields.
func (r *productRepository) List(ctx context.Context, opts ListOptions) ([]*entity.Product, int64, error) {
	var where []string
	var args []any

	addArg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if opts.Search != "" {
		n := addArg("%" + opts.Search + "%")
		var parts []string
		for _, f := range productSearchFields {
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", f, n))
		}
		where = append(where, "("+strings.Join(parts, " OR ")+")")
	}

	for field, value := range opts.Filters {
		col, ok := productFilterFields[field]
		if !ok {
			continue
		}
		n := addArg(value)
		where = append(where, fmt.Sprintf("%s::text = $%d", col, n))
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, description, price, discount, created_by_id,
		       archived, created_at
		FROM products
	`)
	countQuery := `SELECT COUNT(*) FROM products`

	if len(where) > 0 {
		clause := " WHERE " + strings.Join(where, " AND ")
		queryBuilder.WriteString(clause)
		countQuery += clause
	}

	orderCol, ok := productOrderFields[opts.OrderBy]
	if !ok {
		orderCol = "name"
	}
	direction := "ASC"
	if opts.Desc {
		direction = "DESC"
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s, id ASC", orderCol, direction))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", addArg(opts.Limit), addArg(opts.Offset)))

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
		r.log.Error("Failed to count products for list", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to list products",
			zap.Error(err),
			zap.String("search", opts.Search),
		)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Discount,
			&product.CreatedByID,
			&product.Archived,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return products, nil
}

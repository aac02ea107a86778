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

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)
	FindAllByPK(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, opts ListOptions) ([]*entity.Order, int64, error)
}

// Field whitelists for the API collection endpoint. Double-underscore
// names reach across the user and product joins.
var (
	orderFilterFields = map[string]string{
		"created_at":       "o.created_at",
		"delivery_address": "o.delivery_address",
		"promocode":        "o.promocode",
		"user__username":   "u.username",
	}
	orderOrderFields = map[string]string{
		"user__username":   "u.username",
		"delivery_address": "o.delivery_address",
		"promocode":        "o.promocode",
	}
)

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// Create inserts the order and its order_products rows in one transaction,
// preserving the product slice order.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (delivery_address, promocode, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		order.DeliveryAddress,
		order.Promocode,
		order.UserID,
		order.CreatedAt,
	).Scan(&order.ID)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
		)
		return fmt.Errorf("failed to create order: %w", err)
	}

	for _, productID := range order.ProductIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)`,
			order.ID, productID,
		)
		if err != nil {
			r.log.Error("Failed to attach product to order",
				zap.Error(err),
				zap.Int64("order_id", order.ID),
				zap.Int64("product_id", productID),
			)
			return fmt.Errorf("failed to attach product: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT id, delivery_address, promocode, user_id, created_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.DeliveryAddress,
		&order.Promocode,
		&order.UserID,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if err := r.loadProductIDs(ctx, []*entity.Order{&order}); err != nil {
		return nil, err
	}

	return &order, nil
}

// FindAll returns orders in the default ordering (owning user), products
// loaded per order.
func (r *orderRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, delivery_address, promocode, user_id, created_at
		FROM orders
		ORDER BY user_id ASC, id ASC
		LIMIT $1 OFFSET $2
	`

	return r.queryOrders(ctx, query, limit, offset)
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// FindByUserID returns one user's orders by primary key ascending, the
// ordering the export payload requires.
func (r *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	query := `
		SELECT id, delivery_address, promocode, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id ASC
	`

	return r.queryOrders(ctx, query, userID)
}

// FindAllByPK returns every order by primary key ascending (staff export).
func (r *orderRepository) FindAllByPK(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT id, delivery_address, promocode, user_id, created_at
		FROM orders
		ORDER BY id ASC
	`

	return r.queryOrders(ctx, query)
}

// Update rewrites the order fields and replaces its product set in one
// transaction.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE orders
		SET delivery_address = $2, promocode = $3, user_id = $4
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		order.ID,
		order.DeliveryAddress,
		order.Promocode,
		order.UserID,
	)
	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.Int64("order_id", order.ID),
		)
		return fmt.Errorf("failed to update order: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("order not found")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("failed to clear order products: %w", err)
	}
	for _, productID := range order.ProductIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)`,
			order.ID, productID,
		)
		if err != nil {
			return fmt.Errorf("failed to attach product: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Delete removes the order and its product links. Orders are hard-deleted.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear order products: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("order not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	r.log.Info("Order deleted", zap.Int64("order_id", id))
	return nil
}

// List serves the API collection endpoint. Search spans the joined product
// names and usernames as well as the order's own text fields.
func (r *orderRepository) List(ctx context.Context, opts ListOptions) ([]*entity.Order, int64, error) {
	var where []string
	var args []any

	addArg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if opts.Search != "" {
		n := addArg("%" + opts.Search + "%")
		where = append(where, fmt.Sprintf(
			`(o.delivery_address ILIKE $%d OR o.promocode ILIKE $%d OR u.username ILIKE $%d
			  OR EXISTS (
			      SELECT 1 FROM order_products op
			      JOIN products p ON p.id = op.product_id
			      WHERE op.order_id = o.id AND p.name ILIKE $%d
			  ))`, n, n, n, n))
	}

	for field, value := range opts.Filters {
		if field == "products__name" {
			n := addArg(value)
			where = append(where, fmt.Sprintf(
				`EXISTS (
				    SELECT 1 FROM order_products op
				    JOIN products p ON p.id = op.product_id
				    WHERE op.order_id = o.id AND p.name = $%d
				)`, n))
			continue
		}
		col, ok := orderFilterFields[field]
		if !ok {
			continue
		}
		n := addArg(value)
		where = append(where, fmt.Sprintf("%s::text = $%d", col, n))
	}

	base := `
		FROM orders o
		JOIN users u ON u.id = o.user_id
	`
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) ` + base + clause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count orders for list", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	orderCol, ok := orderOrderFields[opts.OrderBy]
	if !ok {
		orderCol = "o.user_id"
	}
	direction := "ASC"
	if opts.Desc {
		direction = "DESC"
	}

	query := `SELECT o.id, o.delivery_address, o.promocode, o.user_id, o.created_at ` +
		base + clause +
		fmt.Sprintf(" ORDER BY %s %s, o.id ASC", orderCol, direction) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", addArg(opts.Limit), addArg(opts.Offset))

	orders, err := r.queryOrders(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query orders", zap.Error(err))
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.DeliveryAddress,
			&order.Promocode,
			&order.UserID,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	if err := r.loadProductIDs(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadProductIDs fills ProductIDs for a batch of orders in one query,
// preserving the insertion order of the join rows.
func (r *orderRepository) loadProductIDs(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[int64]*entity.Order, len(orders))
	ids := make([]int64, len(orders))
	for i, order := range orders {
		byID[order.ID] = order
		ids[i] = order.ID
	}

	rows, err := r.db.Query(ctx,
		`SELECT order_id, product_id FROM order_products
		 WHERE order_id = ANY($1)
		 ORDER BY id ASC`,
		ids,
	)
	if err != nil {
		r.log.Error("Failed to load order products", zap.Error(err))
		return fmt.Errorf("failed to load order products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, productID int64
		if err := rows.Scan(&orderID, &productID); err != nil {
			return fmt.Errorf("failed to scan order product: %w", err)
		}
		if order, ok := byID[orderID]; ok {
			order.ProductIDs = append(order.ProductIDs, productID)
		}
	}

	return rows.Err()
}

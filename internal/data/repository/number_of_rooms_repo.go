package repository

import (
	"context"
	"fmt"

	"shop-portal/internal/data/entity"
	"shop-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NumberOfRoomsRepository interface {
	Create(ctx context.Context, rooms *entity.NumberOfRooms) error
	FindByID(ctx context.Context, id int64) (*entity.NumberOfRooms, error)
	FindAll(ctx context.Context) ([]*entity.NumberOfRooms, error)
	Update(ctx context.Context, rooms *entity.NumberOfRooms) error
	Delete(ctx context.Context, id int64) error
}

type numberOfRoomsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNumberOfRoomsRepository(db database.PgxIface, log *zap.Logger) NumberOfRoomsRepository {
	return &numberOfRoomsRepository{
		db:  db,
		log: log.With(zap.String("repository", "number_of_rooms")),
	}
}

func (r *numberOfRoomsRepository) Create(ctx context.Context, rooms *entity.NumberOfRooms) error {
	query := `
		INSERT INTO number_of_rooms (quantity, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, rooms.Quantity, rooms.CreatedAt).Scan(&rooms.ID)
	if err != nil {
		r.log.Error("Failed to create number of rooms", zap.Error(err))
		return fmt.Errorf("failed to create number of rooms: %w", err)
	}

	return nil
}

func (r *numberOfRoomsRepository) FindByID(ctx context.Context, id int64) (*entity.NumberOfRooms, error) {
	query := `SELECT id, quantity, created_at FROM number_of_rooms WHERE id = $1`

	var rooms entity.NumberOfRooms
	err := r.db.QueryRow(ctx, query, id).Scan(&rooms.ID, &rooms.Quantity, &rooms.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find number of rooms by ID",
			zap.Error(err),
			zap.Int64("number_of_rooms_id", id),
		)
		return nil, fmt.Errorf("failed to find number of rooms: %w", err)
	}

	return &rooms, nil
}

func (r *numberOfRoomsRepository) FindAll(ctx context.Context) ([]*entity.NumberOfRooms, error) {
	query := `SELECT id, quantity, created_at FROM number_of_rooms ORDER BY quantity ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all number of rooms", zap.Error(err))
		return nil, fmt.Errorf("failed to find number of rooms: %w", err)
	}
	defer rows.Close()

	var roomsList []*entity.NumberOfRooms
	for rows.Next() {
		var rooms entity.NumberOfRooms
		if err := rows.Scan(&rooms.ID, &rooms.Quantity, &rooms.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan number of rooms: %w", err)
		}
		roomsList = append(roomsList, &rooms)
	}

	return roomsList, rows.Err()
}

func (r *numberOfRoomsRepository) Update(ctx context.Context, rooms *entity.NumberOfRooms) error {
	result, err := r.db.Exec(ctx,
		`UPDATE number_of_rooms SET quantity = $2 WHERE id = $1`,
		rooms.ID, rooms.Quantity)
	if err != nil {
		r.log.Error("Failed to update number of rooms",
			zap.Error(err),
			zap.Int64("number_of_rooms_id", rooms.ID),
		)
		return fmt.Errorf("failed to update number of rooms: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("number of rooms not found")
	}

	return nil
}

func (r *numberOfRoomsRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM number_of_rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete number of rooms",
			zap.Error(err),
			zap.Int64("number_of_rooms_id", id),
		)
		return fmt.Errorf("failed to delete number of rooms: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("number of rooms not found")
	}

	return nil
}

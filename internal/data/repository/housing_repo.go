package repository

import (
	"context"
	"fmt"

	"shop-portal/internal/data/entity"
	"shop-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HousingRepository interface {
	Create(ctx context.Context, housing *entity.Housing) error
	FindByID(ctx context.Context, id int64) (*entity.Housing, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Housing, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, housing *entity.Housing) error
	Delete(ctx context.Context, id int64) error
	CountByHousingType(ctx context.Context, housingTypeID int64) (int64, error)
	CountByRooms(ctx context.Context, numberOfRoomsID int64) (int64, error)
}

type housingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHousingRepository(db database.PgxIface, log *zap.Logger) HousingRepository {
	return &housingRepository{
		db:  db,
		log: log.With(zap.String("repository", "housing")),
	}
}

func (r *housingRepository) Create(ctx context.Context, housing *entity.Housing) error {
	query := `
		INSERT INTO housings (housing_type_id, number_of_rooms_id, address, square, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		housing.HousingTypeID,
		housing.NumberOfRoomsID,
		housing.Address,
		housing.Square,
		housing.CreatedAt,
	).Scan(&housing.ID)

	if err != nil {
		r.log.Error("Failed to create housing", zap.Error(err))
		return fmt.Errorf("failed to create housing: %w", err)
	}

	return nil
}

func (r *housingRepository) FindByID(ctx context.Context, id int64) (*entity.Housing, error) {
	query := `
		SELECT h.id, h.housing_type_id, h.number_of_rooms_id, h.address, h.square,
		       h.created_at, ht.title, nr.quantity
		FROM housings h
		JOIN housing_types ht ON ht.id = h.housing_type_id
		JOIN number_of_rooms nr ON nr.id = h.number_of_rooms_id
		WHERE h.id = $1
	`

	var housing entity.Housing
	err := r.db.QueryRow(ctx, query, id).Scan(
		&housing.ID,
		&housing.HousingTypeID,
		&housing.NumberOfRoomsID,
		&housing.Address,
		&housing.Square,
		&housing.CreatedAt,
		&housing.HousingTypeTitle,
		&housing.RoomQuantity,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find housing by ID",
			zap.Error(err),
			zap.Int64("housing_id", id),
		)
		return nil, fmt.Errorf("failed to find housing: %w", err)
	}

	return &housing, nil
}

// FindAll returns housings with the housing type join applied.
func (r *housingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Housing, error) {
	query := `
		SELECT h.id, h.housing_type_id, h.number_of_rooms_id, h.address, h.square,
		       h.created_at, ht.title, nr.quantity
		FROM housings h
		JOIN housing_types ht ON ht.id = h.housing_type_id
		JOIN number_of_rooms nr ON nr.id = h.number_of_rooms_id
		ORDER BY h.id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all housings",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find housings: %w", err)
	}
	defer rows.Close()

	var housings []*entity.Housing
	for rows.Next() {
		var housing entity.Housing
		err := rows.Scan(
			&housing.ID,
			&housing.HousingTypeID,
			&housing.NumberOfRoomsID,
			&housing.Address,
			&housing.Square,
			&housing.CreatedAt,
			&housing.HousingTypeTitle,
			&housing.RoomQuantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan housing: %w", err)
		}
		housings = append(housings, &housing)
	}

	return housings, rows.Err()
}

func (r *housingRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM housings`).Scan(&total); err != nil {
		r.log.Error("Failed to count housings", zap.Error(err))
		return 0, fmt.Errorf("failed to count housings: %w", err)
	}
	return total, nil
}

func (r *housingRepository) Update(ctx context.Context, housing *entity.Housing) error {
	query := `
		UPDATE housings
		SET housing_type_id = $2, number_of_rooms_id = $3, address = $4, square = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		housing.ID,
		housing.HousingTypeID,
		housing.NumberOfRoomsID,
		housing.Address,
		housing.Square,
	)

	if err != nil {
		r.log.Error("Failed to update housing",
			zap.Error(err),
			zap.Int64("housing_id", housing.ID),
		)
		return fmt.Errorf("failed to update housing: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("housing not found")
	}

	return nil
}

func (r *housingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM housings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete housing",
			zap.Error(err),
			zap.Int64("housing_id", id),
		)
		return fmt.Errorf("failed to delete housing: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("housing not found")
	}

	return nil
}

// CountByHousingType reports how many housings still reference the type;
// callers block type deletion while the count is non-zero.
func (r *housingRepository) CountByHousingType(ctx context.Context, housingTypeID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM housings WHERE housing_type_id = $1`, housingTypeID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count housings by type",
			zap.Error(err),
			zap.Int64("housing_type_id", housingTypeID),
		)
		return 0, fmt.Errorf("failed to count housings: %w", err)
	}
	return total, nil
}

func (r *housingRepository) CountByRooms(ctx context.Context, numberOfRoomsID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM housings WHERE number_of_rooms_id = $1`, numberOfRoomsID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count housings by rooms",
			zap.Error(err),
			zap.Int64("number_of_rooms_id", numberOfRoomsID),
		)
		return 0, fmt.Errorf("failed to count housings: %w", err)
	}
	return total, nil
}

package repository

import (
	"context"
	"fmt"

	"shop-portal/internal/data/entity"
	"shop-portal/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HousingTypeRepository interface {
	Create(ctx context.Context, housingType *entity.HousingType) error
	FindByID(ctx context.Context, id int64) (*entity.HousingType, error)
	FindAll(ctx context.Context) ([]*entity.HousingType, error)
	Update(ctx context.Context, housingType *entity.HousingType) error
	Delete(ctx context.Context, id int64) error
}

type housingTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHousingTypeRepository(db database.PgxIface, log *zap.Logger) HousingTypeRepository {
	return &housingTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "housing_type")),
	}
}

func (r *housingTypeRepository) Create(ctx context.Context, housingType *entity.HousingType) error {
	query := `
		INSERT INTO housing_types (title, info, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, housingType.Title, housingType.Info, housingType.CreatedAt).Scan(&housingType.ID)
	if err != nil {
		r.log.Error("Failed to create housing type", zap.Error(err))
		return fmt.Errorf("failed to create housing type: %w", err)
	}

	return nil
}

func (r *housingTypeRepository) FindByID(ctx context.Context, id int64) (*entity.HousingType, error) {
	query := `SELECT id, title, info, created_at FROM housing_types WHERE id = $1`

	var housingType entity.HousingType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&housingType.ID,
		&housingType.Title,
		&housingType.Info,
		&housingType.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find housing type by ID",
			zap.Error(err),
			zap.Int64("housing_type_id", id),
		)
		return nil, fmt.Errorf("failed to find housing type: %w", err)
	}

	return &housingType, nil
}

func (r *housingTypeRepository) FindAll(ctx context.Context) ([]*entity.HousingType, error) {
	query := `SELECT id, title, info, created_at FROM housing_types ORDER BY title ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all housing types", zap.Error(err))
		return nil, fmt.Errorf("failed to find housing types: %w", err)
	}
	defer rows.Close()

	var housingTypes []*entity.HousingType
	for rows.Next() {
		var housingType entity.HousingType
		if err := rows.Scan(&housingType.ID, &housingType.Title, &housingType.Info, &housingType.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan housing type: %w", err)
		}
		housingTypes = append(housingTypes, &housingType)
	}

	return housingTypes, rows.Err()
}

func (r *housingTypeRepository) Update(ctx context.Context, housingType *entity.HousingType) error {
	result, err := r.db.Exec(ctx,
		`UPDATE housing_types SET title = $2, info = $3 WHERE id = $1`,
		housingType.ID, housingType.Title, housingType.Info)
	if err != nil {
		r.log.Error("Failed to update housing type",
			zap.Error(err),
			zap.Int64("housing_type_id", housingType.ID),
		)
		return fmt.Errorf("failed to update housing type: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("housing type not found")
	}

	return nil
}

func (r *housingTypeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM housing_types WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete housing type",
			zap.Error(err),
			zap.Int64("housing_type_id", id),
		)
		return fmt.Errorf("failed to delete housing type: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("housing type not found")
	}

	return nil
}

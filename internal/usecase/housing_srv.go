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

type HousingService interface {
	GetHousings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HousingResponse], error)
	GetHousingByID(ctx context.Context, housingID int64) (*response.HousingResponse, error)
	CreateHousing(ctx context.Context, req *request.HousingRequest) (*response.HousingResponse, error)
	UpdateHousing(ctx context.Context, housingID int64, req *request.HousingUpdateRequest) (*response.HousingResponse, error)
	DeleteHousing(ctx context.Context, housingID int64) error

	GetHousingTypes(ctx context.Context) ([]response.HousingTypeResponse, error)
	CreateHousingType(ctx context.Context, req *request.HousingTypeRequest) (*response.HousingTypeResponse, error)
	UpdateHousingType(ctx context.Context, housingTypeID int64, req *request.HousingTypeRequest) (*response.HousingTypeResponse, error)
	DeleteHousingType(ctx context.Context, housingTypeID int64) error

	GetNumberOfRooms(ctx context.Context) ([]response.NumberOfRoomsResponse, error)
	CreateNumberOfRooms(ctx context.Context, req *request.NumberOfRoomsRequest) (*response.NumberOfRoomsResponse, error)
	DeleteNumberOfRooms(ctx context.Context, numberOfRoomsID int64) error
}

type housingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHousingService(repo *repository.Repository, log *zap.Logger) HousingService {
	return &housingService{
		repo: repo,
		log:  log.With(zap.String("service", "housing")),
	}
}

func (s *housingService) GetHousings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HousingResponse], error) {
	housings, err := s.repo.Housing.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get housings", zap.Error(err))
		return nil, fmt.Errorf("get housings: %w", err)
	}

	total, err := s.repo.Housing.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count housings", zap.Error(err))
		return nil, fmt.Errorf("count housings: %w", err)
	}

	return response.NewPaginatedResponse(response.HousingsToResponse(housings), req.Page, req.PerPage, total), nil
}

func (s *housingService) GetHousingByID(ctx context.Context, housingID int64) (*response.HousingResponse, error) {
	housing, err := s.repo.Housing.FindByID(ctx, housingID)
	if err != nil {
		s.log.Error("Failed to get housing", zap.Error(err), zap.Int64("housing_id", housingID))
		return nil, fmt.Errorf("get housing: %w", err)
	}
	if housing == nil {
		return nil, fmt.Errorf("housing %d: %w", housingID, ErrNotFound)
	}

	resp := response.HousingToResponse(housing)
	return &resp, nil
}

func (s *housingService) CreateHousing(ctx context.Context, req *request.HousingRequest) (*response.HousingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Housing validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	housingType, err := s.repo.HousingType.FindByID(ctx, req.HousingTypeID)
	if err != nil {
		return nil, fmt.Errorf("find housing type: %w", err)
	}
	if housingType == nil {
		return nil, NewValidationError(map[string]string{"housing_type": "housing type does not exist"})
	}

	rooms, err := s.repo.NumberOfRooms.FindByID(ctx, req.NumberOfRoomsID)
	if err != nil {
		return nil, fmt.Errorf("find number of rooms: %w", err)
	}
	if rooms == nil {
		return nil, NewValidationError(map[string]string{"number_of_rooms": "number of rooms does not exist"})
	}

	housing := &entity.Housing{
		BaseSimple:      entity.BaseSimple{CreatedAt: time.Now()},
		HousingTypeID:   req.HousingTypeID,
		NumberOfRoomsID: req.NumberOfRoomsID,
		Address:         req.Address,
		Square:          req.Square,
	}

	if err := s.repo.Housing.Create(ctx, housing); err != nil {
		s.log.Error("Failed to create housing", zap.Error(err))
		return nil, fmt.Errorf("create housing: %w", err)
	}

	housing.HousingTypeTitle = housingType.Title
	quantity := rooms.Quantity
	housing.RoomQuantity = &quantity

	resp := response.HousingToResponse(housing)
	return &resp, nil
}

func (s *housingService) UpdateHousing(ctx context.Context, housingID int64, req *request.HousingUpdateRequest) (*response.HousingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Housing update validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	housing, err := s.repo.Housing.FindByID(ctx, housingID)
	if err != nil {
		s.log.Error("Failed to find housing", zap.Error(err), zap.Int64("housing_id", housingID))
		return nil, fmt.Errorf("find housing: %w", err)
	}
	if housing == nil {
		return nil, fmt.Errorf("housing %d: %w", housingID, ErrNotFound)
	}

	if req.HousingTypeID != nil {
		housingType, err := s.repo.HousingType.FindByID(ctx, *req.HousingTypeID)
		if err != nil {
			return nil, fmt.Errorf("find housing type: %w", err)
		}
		if housingType == nil {
			return nil, NewValidationError(map[string]string{"housing_type": "housing type does not exist"})
		}
		housing.HousingTypeID = *req.HousingTypeID
	}
	if req.NumberOfRoomsID != nil {
		rooms, err := s.repo.NumberOfRooms.FindByID(ctx, *req.NumberOfRoomsID)
		if err != nil {
			return nil, fmt.Errorf("find number of rooms: %w", err)
		}
		if rooms == nil {
			return nil, NewValidationError(map[string]string{"number_of_rooms": "number of rooms does not exist"})
		}
		housing.NumberOfRoomsID = *req.NumberOfRoomsID
	}
	if req.Address != nil {
		housing.Address = req.Address
	}
	if req.Square != nil {
		housing.Square = req.Square
	}

	if err := s.repo.Housing.Update(ctx, housing); err != nil {
		s.log.Error("Failed to update housing", zap.Error(err), zap.Int64("housing_id", housingID))
		return nil, fmt.Errorf("update housing: %w", err)
	}

	updated, err := s.repo.Housing.FindByID(ctx, housingID)
	if err != nil || updated == nil {
		resp := response.HousingToResponse(housing)
		return &resp, nil
	}

	resp := response.HousingToResponse(updated)
	return &resp, nil
}

func (s *housingService) DeleteHousing(ctx context.Context, housingID int64) error {
	housing, err := s.repo.Housing.FindByID(ctx, housingID)
	if err != nil {
		return fmt.Errorf("find housing: %w", err)
	}
	if housing == nil {
		return fmt.Errorf("housing %d: %w", housingID, ErrNotFound)
	}

	if err := s.repo.Housing.Delete(ctx, housingID); err != nil {
		s.log.Error("Failed to delete housing", zap.Error(err), zap.Int64("housing_id", housingID))
		return fmt.Errorf("delete housing: %w", err)
	}

	return nil
}

func (s *housingService) GetHousingTypes(ctx context.Context) ([]response.HousingTypeResponse, error) {
	housingTypes, err := s.repo.HousingType.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get housing types", zap.Error(err))
		return nil, fmt.Errorf("get housing types: %w", err)
	}

	responses := make([]response.HousingTypeResponse, len(housingTypes))
	for i, housingType := range housingTypes {
		responses[i] = response.HousingTypeToResponse(housingType)
	}
	return responses, nil
}

func (s *housingService) CreateHousingType(ctx context.Context, req *request.HousingTypeRequest) (*response.HousingTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	housingType := &entity.HousingType{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		Title:      req.Title,
		Info:       req.Info,
	}

	if err := s.repo.HousingType.Create(ctx, housingType); err != nil {
		s.log.Error("Failed to create housing type", zap.Error(err))
		return nil, fmt.Errorf("create housing type: %w", err)
	}

	resp := response.HousingTypeToResponse(housingType)
	return &resp, nil
}

func (s *housingService) UpdateHousingType(ctx context.Context, housingTypeID int64, req *request.HousingTypeRequest) (*response.HousingTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	housingType, err := s.repo.HousingType.FindByID(ctx, housingTypeID)
	if err != nil {
		return nil, fmt.Errorf("find housing type: %w", err)
	}
	if housingType == nil {
		return nil, fmt.Errorf("housing type %d: %w", housingTypeID, ErrNotFound)
	}

	if req.Title != nil {
		housingType.Title = req.Title
	}
	if req.Info != nil {
		housingType.Info = req.Info
	}

	if err := s.repo.HousingType.Update(ctx, housingType); err != nil {
		s.log.Error("Failed to update housing type", zap.Error(err), zap.Int64("housing_type_id", housingTypeID))
		return nil, fmt.Errorf("update housing type: %w", err)
	}

	resp := response.HousingTypeToResponse(housingType)
	return &resp, nil
}

// DeleteHousingType refuses while any housing still references the type;
// the caller gets ErrIntegrity rather than a database constraint failure.
func (s *housingService) DeleteHousingType(ctx context.Context, housingTypeID int64) error {
	housingType, err := s.repo.HousingType.FindByID(ctx, housingTypeID)
	if err != nil {
		return fmt.Errorf("find housing type: %w", err)
	}
	if housingType == nil {
		return fmt.Errorf("housing type %d: %w", housingTypeID, ErrNotFound)
	}

	count, err := s.repo.Housing.CountByHousingType(ctx, housingTypeID)
	if err != nil {
		return fmt.Errorf("count referencing housings: %w", err)
	}
	if count > 0 {
		s.log.Warn("Housing type delete blocked",
			zap.Int64("housing_type_id", housingTypeID),
			zap.Int64("referencing", count),
		)
		return fmt.Errorf("housing type %d referenced by %d housing(s): %w", housingTypeID, count, ErrIntegrity)
	}

	if err := s.repo.HousingType.Delete(ctx, housingTypeID); err != nil {
		s.log.Error("Failed to delete housing type", zap.Error(err), zap.Int64("housing_type_id", housingTypeID))
		return fmt.Errorf("delete housing type: %w", err)
	}

	return nil
}

func (s *housingService) GetNumberOfRooms(ctx context.Context) ([]response.NumberOfRoomsResponse, error) {
	roomsList, err := s.repo.NumberOfRooms.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get number of rooms", zap.Error(err))
		return nil, fmt.Errorf("get number of rooms: %w", err)
	}

	responses := make([]response.NumberOfRoomsResponse, len(roomsList))
	for i, rooms := range roomsList {
		responses[i] = response.NumberOfRoomsToResponse(rooms)
	}
	return responses, nil
}

func (s *housingService) CreateNumberOfRooms(ctx context.Context, req *request.NumberOfRoomsRequest) (*response.NumberOfRoomsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	rooms := &entity.NumberOfRooms{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		Quantity:   req.Quantity,
	}

	if err := s.repo.NumberOfRooms.Create(ctx, rooms); err != nil {
		s.log.Error("Failed to create number of rooms", zap.Error(err))
		return nil, fmt.Errorf("create number of rooms: %w", err)
	}

	resp := response.NumberOfRoomsToResponse(rooms)
	return &resp, nil
}

func (s *housingService) DeleteNumberOfRooms(ctx context.Context, numberOfRoomsID int64) error {
	rooms, err := s.repo.NumberOfRooms.FindByID(ctx, numberOfRoomsID)
	if err != nil {
		return fmt.Errorf("find number of rooms: %w", err)
	}
	if rooms == nil {
		return fmt.Errorf("number of rooms %d: %w", numberOfRoomsID, ErrNotFound)
	}

	count, err := s.repo.Housing.CountByRooms(ctx, numberOfRoomsID)
	if err != nil {
		return fmt.Errorf("count referencing housings: %w", err)
	}
	if count > 0 {
		s.log.Warn("Number of rooms delete blocked",
			zap.Int64("number_of_rooms_id", numberOfRoomsID),
			zap.Int64("referencing", count),
		)
		return fmt.Errorf("number of rooms %d referenced by %d housing(s): %w", numberOfRoomsID, count, ErrIntegrity)
	}

	if err := s.repo.NumberOfRooms.Delete(ctx, numberOfRoomsID); err != nil {
		s.log.Error("Failed to delete number of rooms", zap.Error(err), zap.Int64("number_of_rooms_id", numberOfRoomsID))
		return fmt.Errorf("delete number of rooms: %w", err)
	}

	return nil
}

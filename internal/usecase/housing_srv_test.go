package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shop-portal/internal/data/repository"
	"shop-portal/internal/dto/request"

	"go.uber.org/zap"
)

func newHousingFixture() (HousingService, *fakeHousingRepo) {
	housings := newFakeHousingRepo()
	repo := &repository.Repository{
		Housing:       housings,
		HousingType:   newFakeHousingTypeRepo(),
		NumberOfRooms: newFakeNumberOfRoomsRepo(),
	}
	svc := NewHousingService(repo, zap.NewNop())
	return svc, housings
}

// TestCreateHousingValidatesReferences requires both lookup rows to exist.
func TestCreateHousingValidatesReferences(t *testing.T) {
	svc, _ := newHousingFixture()
	ctx := context.Background()

	title := "Apartment"
	housingType, err := svc.CreateHousingType(ctx, &request.HousingTypeRequest{Title: &title})
	assert.NoError(t, err)

	rooms, err := svc.CreateNumberOfRooms(ctx, &request.NumberOfRoomsRequest{Quantity: 3})
	assert.NoError(t, err)

	_, err = svc.CreateHousing(ctx, &request.HousingRequest{
		HousingTypeID:   99,
		NumberOfRoomsID: rooms.ID,
	})
	vErr, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, vErr.Fields, "housing_type")

	resp, err := svc.CreateHousing(ctx, &request.HousingRequest{
		HousingTypeID:   housingType.ID,
		NumberOfRoomsID: rooms.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, housingType.ID, resp.HousingTypeID)
}

// TestDeleteHousingTypeBlockedWhileReferenced mirrors a protected foreign
// key: the lookup row cannot go away while housings still point at it.
func TestDeleteHousingTypeBlockedWhileReferenced(t *testing.T) {
	svc, _ := newHousingFixture()
	ctx := context.Background()

	title := "Apartment"
	housingType, err := svc.CreateHousingType(ctx, &request.HousingTypeRequest{Title: &title})
	assert.NoError(t, err)

	rooms, err := svc.CreateNumberOfRooms(ctx, &request.NumberOfRoomsRequest{Quantity: 2})
	assert.NoError(t, err)

	housing, err := svc.CreateHousing(ctx, &request.HousingRequest{
		HousingTypeID:   housingType.ID,
		NumberOfRoomsID: rooms.ID,
	})
	assert.NoError(t, err)

	err = svc.DeleteHousingType(ctx, housingType.ID)
	assert.ErrorIs(t, err, ErrIntegrity)

	err = svc.DeleteNumberOfRooms(ctx, rooms.ID)
	assert.ErrorIs(t, err, ErrIntegrity)

	assert.NoError(t, svc.DeleteHousing(ctx, housing.ID))
	assert.NoError(t, svc.DeleteHousingType(ctx, housingType.ID))
	assert.NoError(t, svc.DeleteNumberOfRooms(ctx, rooms.ID))
}

// TestUpdateHousingSwapsReferences re-checks a swapped foreign key before
// applying it.
func TestUpdateHousingSwapsReferences(t *testing.T) {
	svc, housings := newHousingFixture()
	ctx := context.Background()

	title := "Apartment"
	housingType, _ := svc.CreateHousingType(ctx, &request.HousingTypeRequest{Title: &title})
	rooms, _ := svc.CreateNumberOfRooms(ctx, &request.NumberOfRoomsRequest{Quantity: 2})

	housing, err := svc.CreateHousing(ctx, &request.HousingRequest{
		HousingTypeID:   housingType.ID,
		NumberOfRoomsID: rooms.ID,
	})
	assert.NoError(t, err)

	missing := int64(99)
	_, err = svc.UpdateHousing(ctx, housing.ID, &request.HousingUpdateRequest{NumberOfRoomsID: &missing})
	vErr, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, vErr.Fields, "number_of_rooms")

	address := "5 Elm St"
	_, err = svc.UpdateHousing(ctx, housing.ID, &request.HousingUpdateRequest{Address: &address})
	assert.NoError(t, err)
	assert.Equal(t, &address, housings.housings[housing.ID].Address)
}

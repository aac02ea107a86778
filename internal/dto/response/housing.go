package response

import (
	"shop-portal/internal/data/entity"
)

type HousingTypeResponse struct {
	ID    int64   `json:"id"`
	Title *string `json:"title"`
	Info  *string `json:"info,omitempty"`
}

type NumberOfRoomsResponse struct {
	ID       int64 `json:"id"`
	Quantity int16 `json:"quantity"`
}

type HousingResponse struct {
	ID              int64    `json:"id"`
	HousingTypeID   int64    `json:"housing_type"`
	HousingType     *string  `json:"housing_type_title,omitempty"`
	NumberOfRoomsID int64    `json:"number_of_rooms"`
	RoomQuantity    *int16   `json:"room_quantity,omitempty"`
	Address         *string  `json:"address"`
	Square          *float64 `json:"square"`
}

func HousingTypeToResponse(housingType *entity.HousingType) HousingTypeResponse {
	return HousingTypeResponse{
		ID:    housingType.ID,
		Title: housingType.Title,
		Info:  housingType.Info,
	}
}

func NumberOfRoomsToResponse(rooms *entity.NumberOfRooms) NumberOfRoomsResponse {
	return NumberOfRoomsResponse{ID: rooms.ID, Quantity: rooms.Quantity}
}

func HousingToResponse(housing *entity.Housing) HousingResponse {
	return HousingResponse{
		ID:              housing.ID,
		HousingTypeID:   housing.HousingTypeID,
		HousingType:     housing.HousingTypeTitle,
		NumberOfRoomsID: housing.NumberOfRoomsID,
		RoomQuantity:    housing.RoomQuantity,
		Address:         housing.Address,
		Square:          housing.Square,
	}
}

func HousingsToResponse(housings []*entity.Housing) []HousingResponse {
	responses := make([]HousingResponse, len(housings))
	for i, housing := range housings {
		responses[i] = HousingToResponse(housing)
	}
	return responses
}

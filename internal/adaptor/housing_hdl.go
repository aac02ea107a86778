package adaptor

import (
	"encoding/json"
	"net/http"

	"shop-portal/internal/dto/request"
	"shop-portal/internal/usecase"
	"shop-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HousingHandler struct {
	service usecase.HousingService
	log     *zap.Logger
}

func NewHousingHandler(service usecase.HousingService, log *zap.Logger) *HousingHandler {
	return &HousingHandler{
		service: service,
		log:     log.With(zap.String("handler", "housing")),
	}
}

// GetHousings handles GET /housing
func (h *HousingHandler) GetHousings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	housings, err := h.service.GetHousings(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get housings")
		return
	}

	utils.ResponseSuccess(w, "Housings retrieved successfully", housings)
}

// GetHousingByID handles GET /housing/{id}
func (h *HousingHandler) GetHousingByID(w http.ResponseWriter, r *http.Request) {
	housingID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid housing ID", nil)
		return
	}

	housing, err := h.service.GetHousingByID(r.Context(), housingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get housing by ID")
		return
	}

	utils.ResponseSuccess(w, "Housing retrieved successfully", housing)
}

// CreateHousing handles POST /housing
func (h *HousingHandler) CreateHousing(w http.ResponseWriter, r *http.Request) {
	var req request.HousingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	housing, err := h.service.CreateHousing(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create housing")
		return
	}

	utils.ResponseCreated(w, "Housing created successfully", housing)
}

// UpdateHousing handles PUT /housing/{id}
func (h *HousingHandler) UpdateHousing(w http.ResponseWriter, r *http.Request) {
	housingID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid housing ID", nil)
		return
	}

	var req request.HousingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	housing, err := h.service.UpdateHousing(r.Context(), housingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update housing")
		return
	}

	utils.ResponseSuccess(w, "Housing updated successfully", housing)
}

// DeleteHousing handles DELETE /housing/{id}
func (h *HousingHandler) DeleteHousing(w http.ResponseWriter, r *http.Request) {
	housingID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid housing ID", nil)
		return
	}

	if err := h.service.DeleteHousing(r.Context(), housingID); err != nil {
		handleServiceError(h.log, w, err, "delete housing")
		return
	}

	utils.ResponseSuccess(w, "Housing deleted successfully", nil)
}

// GetHousingTypes handles GET /housing/types
func (h *HousingHandler) GetHousingTypes(w http.ResponseWriter, r *http.Request) {
	housingTypes, err := h.service.GetHousingTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get housing types")
		return
	}

	utils.ResponseSuccess(w, "Housing types retrieved successfully", housingTypes)
}

// CreateHousingType handles POST /housing/types
func (h *HousingHandler) CreateHousingType(w http.ResponseWriter, r *http.Request) {
	var req request.HousingTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	housingType, err := h.service.CreateHousingType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create housing type")
		return
	}

	utils.ResponseCreated(w, "Housing type created successfully", housingType)
}

// UpdateHousingType handles PUT /housing/types/{id}
func (h *HousingHandler) UpdateHousingType(w http.ResponseWriter, r *http.Request) {
	housingTypeID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid housing type ID", nil)
		return
	}

	var req request.HousingTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	housingType, err := h.service.UpdateHousingType(r.Context(), housingTypeID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update housing type")
		return
	}

	utils.ResponseSuccess(w, "Housing type updated successfully", housingType)
}

// DeleteHousingType handles DELETE /housing/types/{id}. Returns 409 while
// housings still reference the type.
func (h *HousingHandler) DeleteHousingType(w http.ResponseWriter, r *http.Request) {
	housingTypeID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid housing type ID", nil)
		return
	}

	if err := h.service.DeleteHousingType(r.Context(), housingTypeID); err != nil {
		handleServiceError(h.log, w, err, "delete housing type")
		return
	}

	utils.ResponseSuccess(w, "Housing type deleted successfully", nil)
}

// GetNumberOfRooms handles GET /housing/rooms
func (h *HousingHandler) GetNumberOfRooms(w http.ResponseWriter, r *http.Request) {
	roomsList, err := h.service.GetNumberOfRooms(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get number of rooms")
		return
	}

	utils.ResponseSuccess(w, "Number of rooms retrieved successfully", roomsList)
}

// CreateNumberOfRooms handles POST /housing/rooms
func (h *HousingHandler) CreateNumberOfRooms(w http.ResponseWriter, r *http.Request) {
	var req request.NumberOfRoomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rooms, err := h.service.CreateNumberOfRooms(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create number of rooms")
		return
	}

	utils.ResponseCreated(w, "Number of rooms created successfully", rooms)
}

// DeleteNumberOfRooms handles DELETE /housing/rooms/{id}
func (h *HousingHandler) DeleteNumberOfRooms(w http.ResponseWriter, r *http.Request) {
	numberOfRoomsID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid number of rooms ID", nil)
		return
	}

	if err := h.service.DeleteNumberOfRooms(r.Context(), numberOfRoomsID); err != nil {
		handleServiceError(h.log, w, err, "delete number of rooms")
		return
	}

	utils.ResponseSuccess(w, "Number of rooms deleted successfully", nil)
}

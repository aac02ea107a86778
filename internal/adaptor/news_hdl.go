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

type NewsHandler struct {
	service usecase.NewsService
	log     *zap.Logger
}

func NewNewsHandler(service usecase.NewsService, log *zap.Logger) *NewsHandler {
	return &NewsHandler{
		service: service,
		log:     log.With(zap.String("handler", "news")),
	}
}

// GetNews handles GET /news
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	news, err := h.service.GetNews(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get news")
		return
	}

	utils.ResponseSuccess(w, "News retrieved successfully", news)
}

// GetNewsByID handles GET /news/{id}
func (h *NewsHandler) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	newsID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid news ID", nil)
		return
	}

	item, err := h.service.GetNewsByID(r.Context(), newsID)
	if err != nil {
		handleServiceError(h.log, w, err, "get news by ID")
		return
	}

	utils.ResponseSuccess(w, "News retrieved successfully", item)
}

// CreateNews handles POST /news
func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req request.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.CreateNews(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create news")
		return
	}

	utils.ResponseCreated(w, "News created successfully", item)
}

// UpdateNews handles PUT /news/{id}
func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	newsID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid news ID", nil)
		return
	}

	var req request.NewsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.UpdateNews(r.Context(), newsID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update news")
		return
	}

	utils.ResponseSuccess(w, "News updated successfully", item)
}

// DeleteNews handles DELETE /news/{id}
func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	newsID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid news ID", nil)
		return
	}

	if err := h.service.DeleteNews(r.Context(), newsID); err != nil {
		handleServiceError(h.log, w, err, "delete news")
		return
	}

	utils.ResponseSuccess(w, "News deleted successfully", nil)
}

// GetFeed handles GET /news/feed: the ten newest published items.
func (h *NewsHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetFeed(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get feed")
		return
	}

	utils.ResponseSuccess(w, "Feed retrieved successfully", items)
}

// Contacts handles GET /news/contacts
func (h *NewsHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Contacts retrieved successfully", map[string]string{
		"email":   "editors@shop-portal.example",
		"phone":   "+1-555-0180",
		"address": "12 Newsroom Way",
	})
}

// AboutUs handles GET /news/about_us
func (h *NewsHandler) AboutUs(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "About page retrieved successfully", map[string]string{
		"title": "About the newsroom",
		"text":  "The news desk publishes product updates and announcements for the portal.",
	})
}

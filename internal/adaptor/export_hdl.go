package adaptor

import (
	"net/http"

	"shop-portal/internal/usecase"
	"shop-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ExportHandler struct {
	service usecase.ExportService
	log     *zap.Logger
}

func NewExportHandler(service usecase.ExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		log:     log.With(zap.String("handler", "export")),
	}
}

// ExportUserOrders handles GET /shop/users/{id}/orders/export: the dump for
// the user named in the path. The route requires authentication only; the
// caller does not have to own the exported orders.
func (h *ExportHandler) ExportUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	export, err := h.service.ExportUserOrders(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "export orders")
		return
	}

	utils.ResponseSuccess(w, "Orders exported successfully", export)
}

// ExportAllOrders handles GET /shop/orders/export/all (staff only).
func (h *ExportHandler) ExportAllOrders(w http.ResponseWriter, r *http.Request) {
	export, err := h.service.ExportAllOrders(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "export all orders")
		return
	}

	utils.ResponseSuccess(w, "Orders exported successfully", export)
}

package wire

import (
	"shop-portal/internal/adaptor"
	"shop-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHousing(
	r chi.Router,
	housingHandler *adaptor.HousingHandler,
	log *zap.Logger,
) {
	r.Route("/housing", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", housingHandler.GetHousings)
		r.Get("/types", housingHandler.GetHousingTypes)
		r.Get("/rooms", housingHandler.GetNumberOfRooms)
		r.Get("/{id}", housingHandler.GetHousingByID)

		// ==================== STAFF ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.StaffRequired(log))

			r.Post("/", housingHandler.CreateHousing)
			r.Put("/{id}", housingHandler.UpdateHousing)
			r.Delete("/{id}", housingHandler.DeleteHousing)

			r.Post("/types", housingHandler.CreateHousingType)
			r.Put("/types/{id}", housingHandler.UpdateHousingType)
			r.Delete("/types/{id}", housingHandler.DeleteHousingType)

			r.Post("/rooms", housingHandler.CreateNumberOfRooms)
			r.Delete("/rooms/{id}", housingHandler.DeleteNumberOfRooms)
		})
	})
}

package wire

import (
	"shop-portal/internal/adaptor"
	"shop-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNews(
	r chi.Router,
	newsHandler *adaptor.NewsHandler,
	log *zap.Logger,
) {
	r.Route("/news", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", newsHandler.GetNews)
		r.Get("/feed", newsHandler.GetFeed)
		r.Get("/contacts", newsHandler.Contacts)
		r.Get("/about_us", newsHandler.AboutUs)
		r.Get("/{id}", newsHandler.GetNewsByID)

		// ==================== STAFF ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.StaffRequired(log))

			r.Post("/", newsHandler.CreateNews)
			r.Put("/{id}", newsHandler.UpdateNews)
			r.Delete("/{id}", newsHandler.DeleteNews)
		})
	})
}

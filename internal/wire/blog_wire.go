package wire

import (
	"shop-portal/internal/adaptor"
	"shop-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBlog(
	r chi.Router,
	blogHandler *adaptor.BlogHandler,
	log *zap.Logger,
) {
	r.Route("/blog", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/articles", blogHandler.GetArticles)
		r.Get("/articles/{id}", blogHandler.GetArticleByID)
		r.Get("/authors", blogHandler.GetAuthors)
		r.Get("/categories", blogHandler.GetCategories)
		r.Get("/tags", blogHandler.GetTags)

		// ==================== STAFF ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.StaffRequired(log))

			r.Post("/articles", blogHandler.CreateArticle)
			r.Put("/articles/{id}", blogHandler.UpdateArticle)
			r.Delete("/articles/{id}", blogHandler.DeleteArticle)

			r.Post("/authors", blogHandler.CreateAuthor)
			r.Delete("/authors/{id}", blogHandler.DeleteAuthor)

			r.Post("/categories", blogHandler.CreateCategory)
			r.Delete("/categories/{id}", blogHandler.DeleteCategory)

			r.Post("/tags", blogHandler.CreateTag)
			r.Delete("/tags/{id}", blogHandler.DeleteTag)
		})
	})
}

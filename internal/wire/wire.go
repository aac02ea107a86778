package wire

import (
	"net/http"

	"shop-portal/internal/adaptor"
	"shop-portal/internal/data/repository"
	"shop-portal/internal/policy"
	"shop-portal/internal/usecase"
	"shop-portal/pkg/cache"
	"shop-portal/pkg/middleware"
	"shop-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, store cache.Store, config *utils.Config, logger *zap.Logger) *App {
	gate := policy.NewDefaultGate()
	service := usecase.NewService(repo, gate, store, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Identity resolution runs on every request; routes decide what an
	// anonymous caller may reach.
	r.Use(middleware.AuthSession(repo, logger))

	wireAuth(r, handler.Auth, logger)
	wireShop(r, handler.Product, handler.Order, handler.Export, logger)
	wireBlog(r, handler.Blog, logger)
	wireNews(r, handler.News, logger)
	wireHousing(r, handler.Housing, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

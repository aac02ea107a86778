package wire

import (
	"shop-portal/internal/adaptor"
	"shop-portal/internal/policy"
	"shop-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	log *zap.Logger,
) {
	r.Route("/accounts", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.Get("/login", authHandler.LoginPage)
		r.Post("/login", authHandler.Login)
		r.Get("/cookie/get", authHandler.GetCookie)

		// ==================== AUTHENTICATED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.LoginRequired(false))

			r.Post("/logout", authHandler.Logout)
			r.Get("/profiles/{id}", authHandler.GetProfile)
			r.Put("/profiles/{id}", authHandler.UpdateProfile)
			r.Get("/session/{key}", authHandler.GetSessionValue)
		})

		// Browser page: anonymous visitors get redirected to login.
		r.Group(func(r chi.Router) {
			r.Use(middleware.LoginRequired(true))

			r.Get("/about-me", authHandler.AboutMe)
		})

		// User directory and session writes need an explicit grant.
		r.Group(func(r chi.Router) {
			r.Use(middleware.PermissionRequired(policy.PermViewProfile, log))

			r.Get("/users", authHandler.GetUsers)
			r.Post("/session", authHandler.SetSessionValue)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.SuperuserRequired(log))

			r.Get("/cookie/set", authHandler.SetCookie)
		})
	})
}

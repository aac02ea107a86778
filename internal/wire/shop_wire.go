package wire

import (
	"shop-portal/internal/adaptor"
	"shop-portal/internal/policy"
	"shop-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShop(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	orderHandler *adaptor.OrderHandler,
	exportHandler *adaptor.ExportHandler,
	log *zap.Logger,
) {
	r.Route("/shop", func(r chi.Router) {
		// ==================== PRODUCTS ====================
		// Catalogue reads are public.
		r.Get("/products", productHandler.GetProducts)
		r.Get("/products/{id}", productHandler.GetProductByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.PermissionRequired(policy.PermAddProduct, log))

			r.Post("/products", productHandler.CreateProduct)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.LoginRequired(false))

			// Ownership is enforced against the loaded product.
			r.Put("/products/{id}", productHandler.UpdateProduct)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.PermissionRequired(policy.PermDeleteProduct, log))

			r.Delete("/products/{id}", productHandler.ArchiveProduct)
		})

		// ==================== ORDERS ====================
		// The order index is a browser page: anonymous visitors are sent
		// to the login page rather than answered with 401.
		r.Group(func(r chi.Router) {
			r.Use(middleware.LoginRequired(true))

			r.Get("/orders", orderHandler.GetOrders)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.PermissionRequired(policy.PermViewOrder, log))

			r.Get("/orders/{id}", orderHandler.GetOrderByID)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.LoginRequired(false))

			r.Post("/orders", orderHandler.CreateOrder)
			r.Put("/orders/{id}", orderHandler.UpdateOrder)
			r.Delete("/orders/{id}", orderHandler.DeleteOrder)

			// Any authenticated caller may export any user's orders.
			r.Get("/users/{id}/orders/export", exportHandler.ExportUserOrders)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.StaffRequired(log))

			r.Get("/orders/export/all", exportHandler.ExportAllOrders)
		})

		// ==================== REST COLLECTIONS ====================
		r.Route("/api", func(r chi.Router) {
			r.Get("/products", productHandler.ListProducts)

			r.Group(func(r chi.Router) {
				r.Use(middleware.LoginRequired(false))

				r.Get("/orders", orderHandler.ListOrders)
			})
		})
	})
}

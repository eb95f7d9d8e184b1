package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/muhammaduss/Warehold/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/{id}/movements", handlers.GetMovementsHandler)

	r.Get("/orders", handlers.GetOrdersHandler)
	r.Get("/orders/{id}", handlers.GetOrderByIDHandler)

	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware)
		pr.Post("/products", handlers.CreateProductHandler)
		pr.Put("/products/{id}", handlers.UpdateProductHandler)
		pr.Delete("/products/{id}", handlers.DeleteProductHandler)
		pr.Post("/products/{id}/adjust", handlers.AdjustCountHandler)
		pr.Post("/products/import", handlers.ImportProductsHandler)

		pr.Post("/orders", handlers.PlaceOrderHandler)
		pr.Patch("/orders/{id}/status", handlers.UpdateOrderStatusHandler)
	})

	return r
}

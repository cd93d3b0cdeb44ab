package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	handlers "github.com/rogerio-castellano/cart-tracker/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/products", handlers.CreateProductHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{code}", handlers.GetProductByCodeHandler)
	r.Put("/products/{code}", handlers.UpdateProductHandler)
	r.Delete("/products/{code}", handlers.DeleteProductHandler)
	r.Get("/products/{code}/movements", handlers.GetMovementsHandler)
	r.Post("/products/import", handlers.ImportProductsHandler)

	r.Post("/cart", handlers.AddCartItemHandler)
	r.Get("/cart", handlers.GetCartHandler)
	r.Delete("/cart/{id}", handlers.RemoveCartItemHandler)

	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	return r
}

// NewRateLimitedRouter wraps the API routes with the per-IP limiter.
// Kept separate so the handler test suite can exercise routes without
// tripping the limiter.
func NewRateLimitedRouter() http.Handler {
	return RateLimitMiddleware(NewRouter())
}

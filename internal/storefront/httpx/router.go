package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/fantasy-books/internal/storefront/httpx/middlewares"
)

func NewRouter(handler *Handler, adminToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.Trace)
	r.Use(middlewares.AttachRequestMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Health)

	r.Get("/books", handler.ListBooks)
	r.Get("/books/{id}", handler.GetBook)
	r.Get("/genres", handler.ListGenres)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", handler.GetCart)
		r.Delete("/", handler.ClearCart)
		r.Post("/items", handler.AddCartItem)
		r.Put("/items/{bookId}", handler.SetCartQuantity)
		r.Delete("/items/{bookId}", handler.RemoveCartItem)
		r.Post("/items/{bookId}/increment", handler.IncrementCartItem)
		r.Post("/items/{bookId}/decrement", handler.DecrementCartItem)
	})

	r.Post("/orders", handler.Checkout)
	r.Get("/orders/{id}", handler.GetOrder)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.AdminOnly(adminToken))
		r.Get("/orders", handler.ListOrders)
		r.Patch("/orders/{id}/status", handler.UpdateOrderStatus)
		r.Get("/orders/{id}/history", handler.OrderHistory)
		r.Get("/books", handler.ListInventory)
		r.Get("/stats", handler.Stats)
		r.Post("/reload", handler.Reload)
	})
	return r
}

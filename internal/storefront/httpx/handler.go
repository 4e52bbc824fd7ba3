package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/fantasy-books/internal/pkg/constants"
	"github.com/jcmexdev/fantasy-books/internal/pkg/listquery"
	"github.com/jcmexdev/fantasy-books/internal/storefront/app"
	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
	"github.com/jcmexdev/fantasy-books/internal/storefront/httpx/middlewares"
)

const maxPerPage = 100

// Handler exposes the storefront and the admin dashboard over JSON.
type Handler struct {
	catalog *app.Catalog
	carts   *app.CartEngine
	orders  *app.Orders
}

func NewHandler(catalog *app.Catalog, carts *app.CartEngine, orders *app.Orders) *Handler {
	return &Handler{catalog: catalog, carts: carts, orders: orders}
}

// --- catalog ---

// ListBooks is the storefront listing, sorted by title unless asked otherwise.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	h.listBooks(w, r, listquery.DefaultCatalogPerPage, listquery.SortTitleAsc)
}

// ListInventory is the admin view of the catalog, in catalog order by default.
func (h *Handler) ListInventory(w http.ResponseWriter, r *http.Request) {
	h.listBooks(w, r, listquery.DefaultListPerPage, listquery.SortNone)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request, perPage int, sort listquery.SortOption) {
	st := parseState(r, "genre", perPage, sort)
	res, st := h.catalog.List(r.Context(), st)
	writeJSON(w, http.StatusOK, mapPage(res, st, mapBook))
}

func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	book, err := h.catalog.ByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapBook(book))
}

func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Genres(r.Context()))
}

// --- cart ---

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapCart(h.carts.Get(r.Context(), session(r))))
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.carts.AddByID(r.Context(), h.catalog, session(r), req.BookID, quantityFrom(req.Quantity))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(c))
}

// SetCartQuantity is a no-op for books that are not in the cart.
func (h *Handler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "bookId")
	if !ok {
		return
	}
	var req SetQuantityRequest
	if !decode(w, r, &req) {
		return
	}
	c := h.carts.SetQuantity(r.Context(), session(r), id, quantityFrom(req.Quantity))
	writeJSON(w, http.StatusOK, mapCart(c))
}

func (h *Handler) IncrementCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "bookId")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, mapCart(h.carts.Increment(r.Context(), session(r), id)))
}

func (h *Handler) DecrementCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "bookId")
	if !ok {
		return
	}
	c, res := h.carts.Decrement(r.Context(), session(r), id)
	resp := mapCart(c)
	resp.RemovalRequested = res == domain.RemovalRequested
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "bookId")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, mapCart(h.carts.Remove(r.Context(), session(r), id)))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapCart(h.carts.Clear(r.Context(), session(r))))
}

// --- orders ---

// Checkout places an order from the session cart.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var info domain.CustomerInfo
	if !decode(w, r, &info) {
		return
	}

	requestID, _ := r.Context().Value(constants.ContextKeyRequestID).(string)
	slog.InfoContext(r.Context(), "placing order", "request_id", requestID, "session", session(r))

	order, err := h.orders.CreateOrder(r.Context(), session(r), info)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/orders/"+order.ID)
	writeJSON(w, http.StatusCreated, mapOrder(order))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(order))
}

// --- admin ---

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	st := parseState(r, "status", listquery.DefaultListPerPage, listquery.SortNewest)
	res, st := h.orders.List(r.Context(), st)
	writeJSON(w, http.StatusOK, mapPage(res, st, mapOrder))
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !decode(w, r, &req) {
		return
	}

	requestID, _ := r.Context().Value(constants.ContextKeyRequestID).(string)
	slog.InfoContext(r.Context(), "updating order status", "request_id", requestID, "order_id", chi.URLParam(r, "id"), "status", req.Status)

	order, err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.OrderStatus(req.Status))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(order))
}

func (h *Handler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.orders.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsResponse{
		Orders: h.orders.Stats(r.Context()),
		Books:  h.catalog.Stats(r.Context()),
	})
}

// Reload drops cached state and re-reads the store, picking up changes made
// by other processes.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.catalog.Reload(ctx); err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := h.orders.Reload(ctx); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.carts.Reload(ctx)
	w.WriteHeader(http.StatusNoContent)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- helpers ---

func session(r *http.Request) string {
	return middlewares.SessionID(r.Context())
}

func parseState(r *http.Request, categoryParam string, perPage int, sort listquery.SortOption) listquery.State {
	q := r.URL.Query()
	st := listquery.NewState(perPage, sort).
		WithSearch(q.Get("q")).
		WithCategory(q.Get(categoryParam))
	if s := q.Get("sort"); s != "" {
		st = st.WithSort(listquery.SortOption(s))
	}
	if n, err := strconv.Atoi(q.Get("perPage")); err == nil && n > 0 && n <= maxPerPage {
		st = st.WithPerPage(n)
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		st = st.WithPage(n)
	}
	return st
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_"+name, "must be an integer")
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: "please correct the highlighted fields",
			Fields:  ve.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "empty_cart", "your cart is empty")
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status", err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "something went wrong, please try again")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}

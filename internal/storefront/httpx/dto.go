package httpx

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/fantasy-books/internal/pkg/listquery"
	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
)

type AddCartItemRequest struct {
	BookID   int             `json:"bookId"`
	Quantity json.RawMessage `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type BookResponse struct {
	domain.Book
	PriceLabel  string             `json:"priceLabel"`
	StockStatus domain.StockStatus `json:"stockStatus"`
}

type CartLineResponse struct {
	domain.CartLine
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CartResponse struct {
	Lines        []CartLineResponse `json:"lines"`
	ItemCount    int                `json:"itemCount"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	Shipping     decimal.Decimal    `json:"shipping"`
	Total        decimal.Decimal    `json:"total"`
	FreeShipping bool               `json:"freeShipping"`

	// RemovalRequested is set when a decrement hit quantity 1; the client
	// confirms and deletes the line.
	RemovalRequested bool `json:"removalRequested,omitempty"`
}

type OrderResponse struct {
	domain.Order
	StatusLabel string `json:"statusLabel"`
	ItemCount   int    `json:"itemCount"`
}

type PageResponse[T any] struct {
	Items      []T                   `json:"items"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"perPage"`
	TotalItems int                   `json:"totalItems"`
	TotalPages int                   `json:"totalPages"`
	RangeStart int                   `json:"rangeStart"`
	RangeEnd   int                   `json:"rangeEnd"`
	HasPrev    bool                  `json:"hasPrev"`
	HasNext    bool                  `json:"hasNext"`
	Pages      []listquery.PageToken `json:"pages"`
	Query      listquery.State       `json:"query"`
}

type StatsResponse struct {
	Orders domain.OrderStats `json:"orders"`
	Books  domain.BookStats  `json:"books"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func mapBook(b domain.Book) BookResponse {
	return BookResponse{
		Book:        b,
		PriceLabel:  domain.FormatPrice(b.Price),
		StockStatus: domain.StockStatusOf(b.Stock),
	}
}

func mapCart(c domain.Cart) CartResponse {
	lines := make([]CartLineResponse, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CartLineResponse{CartLine: l, LineTotal: l.LineTotal()}
	}
	quote := c.Quote()
	return CartResponse{
		Lines:        lines,
		ItemCount:    c.ItemCount(),
		Subtotal:     quote.Subtotal,
		Shipping:     quote.Shipping,
		Total:        quote.Total,
		FreeShipping: quote.FreeShipping(),
	}
}

func mapOrder(o domain.Order) OrderResponse {
	return OrderResponse{
		Order:       o,
		StatusLabel: o.Status.Label(),
		ItemCount:   o.ItemCount(),
	}
}

func mapPage[T, R any](res listquery.Result[T], st listquery.State, fn func(T) R) PageResponse[R] {
	items := make([]R, len(res.Items))
	for i, it := range res.Items {
		items[i] = fn(it)
	}
	return PageResponse[R]{
		Items:      items,
		Page:       res.Page,
		PerPage:    res.PerPage,
		TotalItems: res.TotalItems,
		TotalPages: res.TotalPages,
		RangeStart: res.RangeStart,
		RangeEnd:   res.RangeEnd,
		HasPrev:    res.HasPrev(),
		HasNext:    res.HasNext(),
		Pages:      res.Pages,
		Query:      st,
	}
}

// quantityFrom accepts a JSON number or string; anything else counts as 1.
func quantityFrom(raw json.RawMessage) int {
	return domain.ParseQuantity(strings.Trim(string(raw), `"`))
}

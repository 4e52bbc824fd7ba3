package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Statuses lists every order status in dashboard order.
var Statuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label is the human readable status name.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

func ParseStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Transition decides whether an order may move from one status to another.
// Any known status is reachable from any other; admins use it as a manual
// override.
func Transition(from, to OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	return nil
}

// OrderLine is the frozen copy of a cart line taken at checkout.
type OrderLine struct {
	BookID   int             `json:"bookId"`
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (l OrderLine) LineTotal() decimal.Decimal {
	return LineTotal(l.Price, l.Quantity)
}

type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Items         []OrderLine     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewOrder snapshots cart into a pending order. The cart must not be empty.
func NewOrder(id string, cart Cart, info CustomerInfo, now time.Time) (*Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := make([]OrderLine, len(cart.Lines))
	for i, l := range cart.Lines {
		items[i] = OrderLine{
			BookID:   l.BookID,
			Title:    l.Title,
			Quantity: l.Quantity,
			Price:    l.Price,
		}
	}
	quote := cart.Quote()

	return &Order{
		ID:            id,
		CustomerName:  info.Name,
		Phone:         info.Phone,
		Email:         info.Email,
		Address:       info.ComposedAddress(),
		Items:         items,
		Subtotal:      quote.Subtotal,
		Shipping:      quote.Shipping,
		Total:         quote.Total,
		Status:        StatusPending,
		PaymentMethod: info.PaymentMethod,
		Notes:         info.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SetStatus applies a transition and moves UpdatedAt strictly forward even
// when the clock has not advanced.
func (o *Order) SetStatus(to OrderStatus, now time.Time) error {
	if err := Transition(o.Status, to); err != nil {
		return err
	}
	if !now.After(o.UpdatedAt) {
		now = o.UpdatedAt.Add(time.Nanosecond)
	}
	o.Status = to
	o.UpdatedAt = now
	return nil
}

func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// Clone returns a deep copy so callers cannot alter stored line items.
func (o Order) Clone() Order {
	items := make([]OrderLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// OrderStats counts orders per status. TotalRevenue sums every order,
// cancelled ones included.
type OrderStats struct {
	Total        int                 `json:"total"`
	ByStatus     map[OrderStatus]int `json:"byStatus"`
	TotalRevenue decimal.Decimal     `json:"totalRevenue"`
}

func ComputeOrderStats(orders []Order) OrderStats {
	stats := OrderStats{
		Total:        len(orders),
		ByStatus:     make(map[OrderStatus]int, len(Statuses)),
		TotalRevenue: decimal.Zero,
	}
	for _, s := range Statuses {
		stats.ByStatus[s] = 0
	}
	for _, o := range orders {
		stats.ByStatus[o.Status]++
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
	}
	return stats
}

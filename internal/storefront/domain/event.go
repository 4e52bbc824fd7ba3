package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderEventType string

const (
	EventOrderCreated       OrderEventType = "order.created"
	EventOrderStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is published after an order is created or changes status.
type OrderEvent struct {
	Type           OrderEventType  `json:"type"`
	OrderID        string          `json:"orderId"`
	Status         OrderStatus     `json:"status"`
	PreviousStatus OrderStatus     `json:"previousStatus,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Items          int             `json:"items"`
	At             time.Time       `json:"at"`
}

func NewOrderEvent(t OrderEventType, o Order, previous OrderStatus) OrderEvent {
	return OrderEvent{
		Type:           t,
		OrderID:        o.ID,
		Status:         o.Status,
		PreviousStatus: previous,
		Total:          o.Total,
		Items:          o.ItemCount(),
		At:             o.UpdatedAt,
	}
}

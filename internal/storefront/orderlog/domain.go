// Package orderlog keeps an append-only audit trail of everything that
// happens to an order: checkout steps, creation and every status change.
//
// Each entry carries the trace and span id active when it was written, so a
// row can be joined with the distributed trace of the request that caused it.
package orderlog

import (
	"context"
	"time"
)

type Event string

const (
	EventCreated       Event = "CREATED"
	EventStatusChanged Event = "STATUS_CHANGED"
	EventStepDone      Event = "CHECKOUT_STEP_DONE"
	EventCompensating  Event = "CHECKOUT_COMPENSATING"
	EventFailed        Event = "CHECKOUT_FAILED"
	EventCompleted     Event = "CHECKOUT_COMPLETED"
)

// Entry is one row of the order log.
type Entry struct {
	OrderID string `json:"orderId"`
	Event   Event  `json:"event"`

	// Step is the checkout step that produced the entry, if any.
	Step string `json:"step,omitempty"`

	FromStatus string `json:"fromStatus,omitempty"`
	ToStatus   string `json:"toStatus,omitempty"`

	// Detail holds error text for failed or compensated steps.
	Detail string `json:"detail,omitempty"`

	TraceID string    `json:"traceId,omitempty"`
	SpanID  string    `json:"spanId,omitempty"`
	At      time.Time `json:"at"`
}

// Repository persists order log entries. Save appends; entries are never
// updated.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	History(ctx context.Context, orderID string) ([]Entry, error)
}

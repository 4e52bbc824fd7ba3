package orderlog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// TraceInfo holds the OTel identifiers extracted from a context.
type TraceInfo struct {
	TraceID string
	SpanID  string
}

// ExtractTraceInfo returns the ids of the active span in ctx, or empty
// strings when there is none.
func ExtractTraceInfo(ctx context.Context) TraceInfo {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return TraceInfo{}
	}
	return TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}
}

// NewEntry builds an entry stamped with the trace info from ctx.
func NewEntry(ctx context.Context, orderID string, event Event) *Entry {
	ti := ExtractTraceInfo(ctx)
	return &Entry{
		OrderID: orderID,
		Event:   event,
		TraceID: ti.TraceID,
		SpanID:  ti.SpanID,
		At:      time.Now().UTC(),
	}
}

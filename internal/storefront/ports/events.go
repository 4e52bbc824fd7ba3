package ports

import (
	"context"

	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
)

// EventPublisher hands order lifecycle events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

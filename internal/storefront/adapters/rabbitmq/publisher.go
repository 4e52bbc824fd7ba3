package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
	"github.com/jcmexdev/fantasy-books/internal/storefront/ports"
)

const publishTimeout = 5 * time.Second

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	pool      *ChannelPool
	queueName string
}

func NewPublisher(pool *ChannelPool, queueName string) *Publisher {
	return &Publisher{pool: pool, queueName: queueName}
}

// Publish sends event as a persistent JSON message routed to the queue.
func (p *Publisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	ch, err := p.pool.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer p.pool.Put(ch)

	err = ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s for %s: %w", event.Type, event.OrderID, err)
	}

	slog.DebugContext(ctx, "order event published", "order_id", event.OrderID, "type", event.Type, "queue", p.queueName)
	return nil
}

func newMessage(event domain.OrderEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal order event: %w", err)
	}
	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         string(event.Type),
		MessageId:    event.OrderID + "/" + event.At.UTC().Format(time.RFC3339Nano),
		Timestamp:    event.At,
		Body:         body,
	}, nil
}

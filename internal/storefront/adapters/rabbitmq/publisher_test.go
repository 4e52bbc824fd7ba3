package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
)

func TestNewMessage(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	event := domain.OrderEvent{
		Type:           domain.EventOrderStatusChanged,
		OrderID:        "ORD-0A1B2C3D4E",
		Status:         domain.StatusShipped,
		PreviousStatus: domain.StatusProcessing,
		Total:          decimal.RequireFromString("79.80"),
		Items:          3,
		At:             at,
	}

	msg, err := newMessage(event)
	require.NoError(t, err)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "order.status_changed", msg.Type)
	assert.Equal(t, "ORD-0A1B2C3D4E/2026-03-04T05:06:07Z", msg.MessageId)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "ORD-0A1B2C3D4E", body["orderId"])
	assert.Equal(t, "shipped", body["status"])
	assert.Equal(t, "processing", body["previousStatus"])
	assert.Equal(t, "79.8", body["total"])
}

func TestChannelPool_GetAfterClose(t *testing.T) {
	pool := &ChannelPool{channels: make(chan *amqp.Channel, 1)}
	require.NoError(t, pool.Close())
	require.NoError(t, pool.Close())

	_, err := pool.Get(context.Background())
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestChannelPool_GetHonoursContext(t *testing.T) {
	pool := &ChannelPool{channels: make(chan *amqp.Channel, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

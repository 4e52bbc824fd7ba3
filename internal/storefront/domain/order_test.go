package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() CustomerInfo {
	return CustomerInfo{
		Name:          "Aisyah Rahman",
		Phone:         "012-345 6789",
		Email:         "aisyah@example.com",
		Address:       "12 Jalan Bukit",
		City:          "Kuala Lumpur",
		Postcode:      "50450",
		State:         "Wilayah Persekutuan",
		PaymentMethod: "cod",
	}
}

func TestNewOrder_SnapshotsCart(t *testing.T) {
	var c Cart
	c.Add(testBook(1, "29.90"), 2)
	c.Add(testBook(2, "15.00"), 1)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	o, err := NewOrder("ORD-1", c, validCustomer(), now)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, now, o.CreatedAt)
	assert.Equal(t, now, o.UpdatedAt)
	assert.Equal(t, "74.80", o.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", o.Shipping.StringFixed(2))
	assert.Equal(t, "79.80", o.Total.StringFixed(2))
	assert.Equal(t, "12 Jalan Bukit, Kuala Lumpur, 50450 Wilayah Persekutuan", o.Address)
	assert.Equal(t, 3, o.ItemCount())

	c.SetQuantity(1, 50)
	c.Lines[1].Price = decimal.NewFromInt(1)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, "15.00", o.Items[1].Price.StringFixed(2))
}

func TestNewOrder_EmptyCart(t *testing.T) {
	_, err := NewOrder("ORD-1", Cart{}, validCustomer(), time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderSetStatus(t *testing.T) {
	var c Cart
	c.Add(testBook(1, "10.00"), 1)
	now := time.Now()
	o, err := NewOrder("ORD-1", c, validCustomer(), now)
	require.NoError(t, err)

	prev := o.UpdatedAt
	for _, s := range []OrderStatus{StatusDelivered, StatusPending, StatusCancelled, StatusShipped} {
		require.NoError(t, o.SetStatus(s, now))
		assert.Equal(t, s, o.Status)
		assert.True(t, o.UpdatedAt.After(prev))
		prev = o.UpdatedAt
	}

	err = o.SetStatus("lost", now.Add(time.Hour))
	assert.True(t, errors.Is(err, ErrInvalidStatus))
	assert.Equal(t, StatusShipped, o.Status)
	assert.Equal(t, prev, o.UpdatedAt)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("processing")
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, s)
	assert.Equal(t, "Processing", s.Label())

	_, err = ParseStatus("PENDING")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestComputeOrderStats_IncludesCancelledRevenue(t *testing.T) {
	orders := []Order{
		{Status: StatusPending, Total: decimal.RequireFromString("10.50")},
		{Status: StatusCancelled, Total: decimal.RequireFromString("20.00")},
		{Status: StatusDelivered, Total: decimal.RequireFromString("5.25")},
		{Status: StatusPending, Total: decimal.RequireFromString("1.00")},
	}

	stats := ComputeOrderStats(orders)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[StatusPending])
	assert.Equal(t, 1, stats.ByStatus[StatusCancelled])
	assert.Equal(t, 0, stats.ByStatus[StatusShipped])
	assert.Equal(t, "36.75", stats.TotalRevenue.StringFixed(2))
}

func TestOrderClone(t *testing.T) {
	o := Order{Items: []OrderLine{{BookID: 1, Quantity: 2}}}
	c := o.Clone()
	c.Items[0].Quantity = 9
	assert.Equal(t, 2, o.Items[0].Quantity)
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceQuote_ShippingThreshold(t *testing.T) {
	for cents := int64(0); cents < 10000; cents += 37 {
		x := decimal.New(cents, -2)
		q := PriceQuote(x)
		assert.True(t, q.Shipping.Equal(FlatShipping), "subtotal %s", x)
		assert.True(t, q.Total.Equal(x.Add(q.Shipping)))
	}

	for _, raw := range []string{"99.99", "100.00", "100.01", "250"} {
		x := decimal.RequireFromString(raw)
		q := PriceQuote(x)
		if x.LessThan(FreeShippingThreshold) {
			assert.False(t, q.FreeShipping(), raw)
		} else {
			assert.True(t, q.FreeShipping(), raw)
		}
		assert.True(t, q.Total.Equal(x.Add(q.Shipping)), raw)
	}
}

func TestPriceQuote_NoFloatDrift(t *testing.T) {
	sum := decimal.Zero
	for i := 0; i < 10; i++ {
		sum = sum.Add(decimal.RequireFromString("0.10"))
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1)))

	q := PriceQuote(decimal.RequireFromString("33.30").Mul(decimal.NewFromInt(3)))
	assert.Equal(t, "99.90", q.Subtotal.StringFixed(2))
	assert.Equal(t, "104.90", q.Total.StringFixed(2))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "RM5.00", FormatPrice(FlatShipping))
	assert.Equal(t, "RM74.80", FormatPrice(decimal.RequireFromString("74.8")))
}

package domain

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook(id int, price string) Book {
	return Book{
		ID:     id,
		Title:  "Book",
		Author: "Author",
		Price:  decimal.RequireFromString(price),
	}
}

func TestCartAdd_MergesAndClamps(t *testing.T) {
	var c Cart
	b := testBook(1, "10.00")

	c.Add(b, 1)
	c.Add(b, 2)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)

	c.Add(b, 500)
	assert.Equal(t, MaxQuantity, c.Lines[0].Quantity)

	c.Add(testBook(2, "1.00"), 0)
	require.Len(t, c.Lines, 2)
	assert.Equal(t, MinQuantity, c.Lines[1].Quantity)
}

func TestCartAdd_RandomSequenceKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var c Cart

	for i := 0; i < 1000; i++ {
		c.Add(testBook(rng.Intn(10), "2.50"), rng.Intn(200)-50)
	}

	seen := map[int]bool{}
	for _, l := range c.Lines {
		assert.False(t, seen[l.BookID], "duplicate line for book %d", l.BookID)
		seen[l.BookID] = true
		assert.GreaterOrEqual(t, l.Quantity, MinQuantity)
		assert.LessOrEqual(t, l.Quantity, MaxQuantity)
	}
}

func TestCartAdd_CachesBookData(t *testing.T) {
	var c Cart
	b := testBook(7, "12.00")
	c.Add(b, 1)

	b.Price = decimal.RequireFromString("99.00")
	c.Add(b, 1)

	assert.True(t, c.Lines[0].Price.Equal(decimal.RequireFromString("12.00")))
}

func TestCartSetQuantity(t *testing.T) {
	var c Cart
	c.Add(testBook(1, "5.00"), 3)

	assert.False(t, c.SetQuantity(99, 4))
	assert.Equal(t, 3, c.Lines[0].Quantity)

	assert.True(t, c.SetQuantity(1, 0))
	assert.Equal(t, 1, c.Lines[0].Quantity)

	assert.True(t, c.SetQuantity(1, 150))
	assert.Equal(t, 99, c.Lines[0].Quantity)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{" 7 ", 7},
		{"100", 99},
		{"2.5", 2},
		{"3 copies", 3},
		{"+4", 4},
		{".5", 1},
		{"99999999999999999999999", 99},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.raw))
		})
	}
}

func TestCartIncrementDecrement(t *testing.T) {
	var c Cart
	c.Add(testBook(1, "5.00"), 98)

	assert.True(t, c.Increment(1))
	assert.False(t, c.Increment(1))
	assert.Equal(t, 99, c.Lines[0].Quantity)

	c.SetQuantity(1, 2)
	assert.Equal(t, DecrementApplied, c.Decrement(1))
	assert.Equal(t, RemovalRequested, c.Decrement(1))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	assert.Equal(t, DecrementNoop, c.Decrement(42))
	assert.False(t, c.Increment(42))
}

func TestCartRemove_Idempotent(t *testing.T) {
	var c Cart
	c.Add(testBook(1, "5.00"), 1)
	c.Add(testBook(2, "6.00"), 1)

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].BookID)
}

func TestCartTotals(t *testing.T) {
	var c Cart
	c.Add(testBook(1, "29.90"), 2)
	c.Add(testBook(2, "15.00"), 1)

	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, "74.80", c.Subtotal().StringFixed(2))

	q := c.Quote()
	assert.Equal(t, "5.00", q.Shipping.StringFixed(2))
	assert.Equal(t, "79.80", q.Total.StringFixed(2))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
	assert.Zero(t, c.ItemCount())
}

func TestCartClone_Independent(t *testing.T) {
	var c Cart
	c.Add(testBook(1, "5.00"), 1)

	clone := c.Clone()
	clone.SetQuantity(1, 50)

	assert.Equal(t, 1, c.Lines[0].Quantity)
}

package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// CartLine caches the book's display data at add time; it is not kept in
// sync with the catalog afterwards.
type CartLine struct {
	BookID   int             `json:"bookId"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return LineTotal(l.Price, l.Quantity)
}

// Cart keeps at most one line per book, in insertion order, and every
// quantity within [MinQuantity, MaxQuantity].
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// DecrementResult tells the caller what Decrement did.
type DecrementResult int

const (
	DecrementNoop DecrementResult = iota
	DecrementApplied
	// RemovalRequested is returned instead of dropping a line to zero; the
	// caller confirms and then calls Remove.
	RemovalRequested
)

func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// ParseQuantity coerces user input by reading its leading integer, so "2.5"
// is 2 and "3 copies" is 3. Input without one becomes 1.
func ParseQuantity(raw string) int {
	m := leadingInt.FindString(strings.TrimSpace(raw))
	if m == "" {
		return MinQuantity
	}
	q, err := strconv.Atoi(m)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return MinQuantity
	}
	return ClampQuantity(q)
}

func (c *Cart) index(bookID int) int {
	for i, l := range c.Lines {
		if l.BookID == bookID {
			return i
		}
	}
	return -1
}

// Line returns the line for bookID.
func (c *Cart) Line(bookID int) (CartLine, bool) {
	if i := c.index(bookID); i >= 0 {
		return c.Lines[i], true
	}
	return CartLine{}, false
}

// Add merges quantity into the book's line, silently capping at MaxQuantity.
func (c *Cart) Add(book Book, quantity int) {
	if i := c.index(book.ID); i >= 0 {
		c.Lines[i].Quantity = ClampQuantity(c.Lines[i].Quantity + quantity)
		return
	}
	c.Lines = append(c.Lines, CartLine{
		BookID:   book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Price:    book.Price,
		Image:    book.Image,
		Quantity: ClampQuantity(quantity),
	})
}

// SetQuantity overwrites the quantity of an existing line. It reports false
// and leaves the cart untouched when the book is not in the cart.
func (c *Cart) SetQuantity(bookID, quantity int) bool {
	i := c.index(bookID)
	if i < 0 {
		return false
	}
	c.Lines[i].Quantity = ClampQuantity(quantity)
	return true
}

func (c *Cart) Increment(bookID int) bool {
	i := c.index(bookID)
	if i < 0 || c.Lines[i].Quantity >= MaxQuantity {
		return false
	}
	c.Lines[i].Quantity++
	return true
}

func (c *Cart) Decrement(bookID int) DecrementResult {
	i := c.index(bookID)
	if i < 0 {
		return DecrementNoop
	}
	if c.Lines[i].Quantity <= MinQuantity {
		return RemovalRequested
	}
	c.Lines[i].Quantity--
	return DecrementApplied
}

// Remove drops the book's line. Removing an absent book is a no-op.
func (c *Cart) Remove(bookID int) bool {
	i := c.index(bookID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) Quote() Quote {
	return PriceQuote(c.Subtotal())
}

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
	"github.com/jcmexdev/fantasy-books/internal/storefront/ports"
)

// CartEngine holds one cart per shopper session. The in-memory cart is
// authoritative; store writes that fail are logged and otherwise ignored.
type CartEngine struct {
	mu    sync.Mutex
	store ports.KVStore
	carts map[string]*domain.Cart
}

func NewCartEngine(store ports.KVStore) *CartEngine {
	return &CartEngine{
		store: store,
		carts: make(map[string]*domain.Cart),
	}
}

func (e *CartEngine) cart(ctx context.Context, session string) *domain.Cart {
	if c, ok := e.carts[session]; ok {
		return c
	}

	c := &domain.Cart{}
	raw, err := e.store.Get(ctx, cartKey(session))
	switch {
	case err != nil:
		slog.WarnContext(ctx, "error reading cart", "session", session, "error", err)
	case raw != "":
		if err := json.Unmarshal([]byte(raw), &c.Lines); err != nil {
			slog.WarnContext(ctx, "error decoding cart", "session", session, "error", err)
			c.Lines = nil
		}
	}
	e.carts[session] = c
	return c
}

func (e *CartEngine) save(ctx context.Context, session string, c *domain.Cart) {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	b, err := json.Marshal(lines)
	if err == nil {
		err = e.store.Set(ctx, cartKey(session), string(b))
	}
	if err != nil {
		slog.WarnContext(ctx, "error saving cart", "session", session, "error", err)
	}
}

// mutate applies fn to the session cart, persists it and returns a snapshot.
func (e *CartEngine) mutate(ctx context.Context, session string, fn func(c *domain.Cart)) domain.Cart {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.cart(ctx, session)
	fn(c)
	e.save(ctx, session, c)
	return c.Clone()
}

func (e *CartEngine) Get(ctx context.Context, session string) domain.Cart {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart(ctx, session).Clone()
}

func (e *CartEngine) Add(ctx context.Context, session string, book domain.Book, quantity int) domain.Cart {
	return e.mutate(ctx, session, func(c *domain.Cart) { c.Add(book, quantity) })
}

// SetQuantity is a no-op for a book that is not in the cart.
func (e *CartEngine) SetQuantity(ctx context.Context, session string, bookID, quantity int) domain.Cart {
	return e.mutate(ctx, session, func(c *domain.Cart) { c.SetQuantity(bookID, quantity) })
}

func (e *CartEngine) Increment(ctx context.Context, session string, bookID int) domain.Cart {
	return e.mutate(ctx, session, func(c *domain.Cart) { c.Increment(bookID) })
}

// Decrement lowers the quantity by one. At quantity 1 it changes nothing and
// reports domain.RemovalRequested so the shopper can confirm a Remove.
func (e *CartEngine) Decrement(ctx context.Context, session string, bookID int) (domain.Cart, domain.DecrementResult) {
	var res domain.DecrementResult
	c := e.mutate(ctx, session, func(c *domain.Cart) { res = c.Decrement(bookID) })
	return c, res
}

func (e *CartEngine) Remove(ctx context.Context, session string, bookID int) domain.Cart {
	return e.mutate(ctx, session, func(c *domain.Cart) { c.Remove(bookID) })
}

func (e *CartEngine) Clear(ctx context.Context, session string) domain.Cart {
	return e.mutate(ctx, session, func(c *domain.Cart) { c.Clear() })
}

// WithCart runs fn against the live session cart under the engine lock. The
// cart is persisted only when fn succeeds; fn must leave it unchanged when it
// returns an error.
func (e *CartEngine) WithCart(ctx context.Context, session string, fn func(c *domain.Cart) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.cart(ctx, session)
	if err := fn(c); err != nil {
		return err
	}
	e.save(ctx, session, c)
	return nil
}

// Reload forgets every cached cart so the next access re-reads the store.
// Whatever another writer stored last wins.
func (e *CartEngine) Reload(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	clear(e.carts)
	slog.DebugContext(ctx, "cart cache dropped")
}

// AddByID looks the book up in the catalog before adding it.
func (e *CartEngine) AddByID(ctx context.Context, catalog *Catalog, session string, bookID, quantity int) (domain.Cart, error) {
	book, err := catalog.ByID(ctx, bookID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("add to cart: %w", err)
	}
	return e.Add(ctx, session, book, quantity), nil
}

package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/jcmexdev/fantasy-books/internal/coordinator"
	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
)

// --- PersistOrderStep ---

// PersistOrderStep appends the new order to the stored order list. It must
// run before the cart is cleared.
type PersistOrderStep struct {
	repo     *Orders
	order    domain.Order
	previous []domain.Order
}

func NewPersistOrderStep(repo *Orders, order domain.Order) *PersistOrderStep {
	return &PersistOrderStep{repo: repo, order: order}
}

func (s *PersistOrderStep) Name() string { return "persist_order" }

func (s *PersistOrderStep) Execute(ctx context.Context) error {
	next := append(slices.Clone(s.repo.orders), s.order)
	if err := s.repo.save(ctx, next); err != nil {
		return fmt.Errorf("persist order %s: %w", s.order.ID, err)
	}
	s.previous = s.repo.orders
	s.repo.orders = next
	return nil
}

func (s *PersistOrderStep) Compensate(ctx context.Context) error {
	s.repo.orders = s.previous
	return s.repo.save(ctx, s.previous)
}

// --- ClearCartStep ---

type ClearCartStep struct {
	cart  *domain.Cart
	saved domain.Cart
}

func NewClearCartStep(cart *domain.Cart) *ClearCartStep {
	return &ClearCartStep{cart: cart}
}

func (s *ClearCartStep) Name() string { return "clear_cart" }

func (s *ClearCartStep) Execute(context.Context) error {
	s.saved = s.cart.Clone()
	s.cart.Clear()
	return nil
}

func (s *ClearCartStep) Compensate(context.Context) error {
	*s.cart = s.saved
	return nil
}

func checkoutSteps(repo *Orders, order domain.Order, cart *domain.Cart) []coordinator.Step {
	return []coordinator.Step{
		NewPersistOrderStep(repo, order),
		NewClearCartStep(cart),
	}
}

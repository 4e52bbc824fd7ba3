package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/fantasy-books/internal/coordinator"
	"github.com/jcmexdev/fantasy-books/internal/pkg/listquery"
	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
	"github.com/jcmexdev/fantasy-books/internal/storefront/orderlog"
	"github.com/jcmexdev/fantasy-books/internal/storefront/ports"
)

// OrderQueryConfig drives the admin order listing.
var OrderQueryConfig = listquery.Config[domain.Order]{
	SearchFields: func(o domain.Order) []string {
		return []string{o.ID, o.CustomerName, o.Email, o.Phone}
	},
	Category: func(o domain.Order) string { return string(o.Status) },
	Sorts: map[listquery.SortOption]listquery.Comparator[domain.Order]{
		listquery.SortNewest:    compareNewest,
		listquery.SortPriceAsc:  compareOrderTotal,
		listquery.SortPriceDesc: listquery.Reverse(compareOrderTotal),
		listquery.SortTitleAsc:  listquery.ByText(customerName),
		listquery.SortTitleDesc: listquery.Reverse(listquery.ByText(customerName)),
	},
	PerPage: listquery.DefaultListPerPage,
}

var compareNewest listquery.Comparator[domain.Order] = func(a, b domain.Order) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}

var compareOrderTotal listquery.Comparator[domain.Order] = func(a, b domain.Order) int {
	return a.Total.Cmp(b.Total)
}

func customerName(o domain.Order) string { return o.CustomerName }

// Orders creates, stores and transitions orders.
type Orders struct {
	mu     sync.Mutex
	store  ports.KVStore
	carts  *CartEngine
	log    orderlog.Repository  // nil-safe
	events ports.EventPublisher // nil-safe
	now    func() time.Time
	newID  func() string
	orders []domain.Order // creation order
	loaded bool
}

type OrdersOption func(*Orders)

func WithOrderLog(log orderlog.Repository) OrdersOption {
	return func(o *Orders) { o.log = log }
}

func WithEventPublisher(p ports.EventPublisher) OrdersOption {
	return func(o *Orders) { o.events = p }
}

func WithClock(now func() time.Time) OrdersOption {
	return func(o *Orders) { o.now = now }
}

func WithIDGenerator(gen func() string) OrdersOption {
	return func(o *Orders) { o.newID = gen }
}

func NewOrders(store ports.KVStore, carts *CartEngine, opts ...OrdersOption) *Orders {
	o := &Orders{
		store: store,
		carts: carts,
		now:   time.Now,
		newID: NewOrderID,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewOrderID returns "ORD-" followed by ten uppercase hex characters.
func NewOrderID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(hex[:10])
}

func (r *Orders) load(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	raw, err := r.store.Get(ctx, OrdersKey)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	var orders []domain.Order
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &orders); err != nil {
			return fmt.Errorf("decode orders: %w", err)
		}
	}
	r.orders = orders
	r.loaded = true
	return nil
}

func (r *Orders) save(ctx context.Context, orders []domain.Order) error {
	if orders == nil {
		orders = []domain.Order{}
	}
	b, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	return r.store.Set(ctx, OrdersKey, string(b))
}

func (r *Orders) exists(id string) bool {
	return r.indexOf(id) >= 0
}

func (r *Orders) indexOf(id string) int {
	return slices.IndexFunc(r.orders, func(o domain.Order) bool { return o.ID == id })
}

func (r *Orders) uniqueID() string {
	for {
		if id := r.newID(); !r.exists(id) {
			return id
		}
	}
}

// CreateOrder turns the session cart into a pending order. Customer info is
// validated first; an empty cart yields domain.ErrEmptyCart. The cart is only
// cleared once the order has been stored.
func (r *Orders) CreateOrder(ctx context.Context, session string, info domain.CustomerInfo) (domain.Order, error) {
	info = info.Normalize()
	if err := info.Validate(); err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(ctx); err != nil {
		return domain.Order{}, err
	}

	var created domain.Order
	err := r.carts.WithCart(ctx, session, func(cart *domain.Cart) error {
		order, err := domain.NewOrder(r.uniqueID(), *cart, info, r.now().UTC())
		if err != nil {
			return err
		}
		saga := coordinator.NewOrchestrator(order.ID, checkoutSteps(r, *order, cart), r.log)
		if err := saga.Start(ctx); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		created = *order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	slog.InfoContext(ctx, "order created", "order_id", created.ID, "total", created.Total.StringFixed(2), "items", created.ItemCount())
	r.record(ctx, created.ID, orderlog.EventCreated, "", created.Status)
	r.publish(ctx, domain.NewOrderEvent(domain.EventOrderCreated, created, ""))
	return created.Clone(), nil
}

func (r *Orders) GetByID(ctx context.Context, id string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(ctx); err != nil {
		return domain.Order{}, err
	}
	i := r.indexOf(id)
	if i < 0 {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return r.orders[i].Clone(), nil
}

// ListAll returns every order, most recently created first.
func (r *Orders) ListAll(ctx context.Context) []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(ctx); err != nil {
		slog.WarnContext(ctx, "orders unavailable", "error", err)
	}
	out := make([]domain.Order, len(r.orders))
	for i, o := range r.orders {
		out[len(out)-1-i] = o.Clone()
	}
	slices.SortStableFunc(out, compareNewest)
	return out
}

// List runs a listing query over all orders.
func (r *Orders) List(ctx context.Context, st listquery.State) (listquery.Result[domain.Order], listquery.State) {
	return listquery.Run(r.ListAll(ctx), OrderQueryConfig, st)
}

// UpdateStatus moves an order to status through domain.Transition. A failed
// store write is logged; the in-memory order keeps the new status.
func (r *Orders) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(ctx); err != nil {
		return domain.Order{}, err
	}
	i := r.indexOf(id)
	if i < 0 {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}

	order := &r.orders[i]
	previous := order.Status
	if err := order.SetStatus(status, r.now().UTC()); err != nil {
		return domain.Order{}, err
	}

	if err := r.save(ctx, r.orders); err != nil {
		slog.WarnContext(ctx, "error saving orders", "order_id", id, "error", err)
	}

	slog.InfoContext(ctx, "order status updated", "order_id", id, "from", previous, "to", status)
	r.record(ctx, id, orderlog.EventStatusChanged, previous, status)
	r.publish(ctx, domain.NewOrderEvent(domain.EventOrderStatusChanged, *order, previous))
	return order.Clone(), nil
}

func (r *Orders) Stats(ctx context.Context) domain.OrderStats {
	return domain.ComputeOrderStats(r.ListAll(ctx))
}

// History returns the order log of an existing order.
func (r *Orders) History(ctx context.Context, id string) ([]orderlog.Entry, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if r.log == nil {
		return []orderlog.Entry{}, nil
	}
	return r.log.History(ctx, id)
}

// Reload re-reads the stored orders, discarding the in-memory list.
func (r *Orders) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	return r.load(ctx)
}

func (r *Orders) record(ctx context.Context, id string, event orderlog.Event, from, to domain.OrderStatus) {
	if r.log == nil {
		return
	}
	entry := orderlog.NewEntry(ctx, id, event)
	entry.FromStatus = string(from)
	entry.ToStatus = string(to)
	if err := r.log.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "order log write failed", "order_id", id, "error", err)
	}
}

func (r *Orders) publish(ctx context.Context, event domain.OrderEvent) {
	if r.events == nil {
		return
	}
	if err := r.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish order event", "order_id", event.OrderID, "type", event.Type, "error", err)
	}
}

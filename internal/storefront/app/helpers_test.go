package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jcmexdev/fantasy-books/internal/storefront/adapters/kv"
	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
)

var errDiskFull = errors.New("quota exceeded")

// flakyStore wraps the memory store and fails writes to selected keys.
type flakyStore struct {
	*kv.Memory
	mu       sync.Mutex
	failSets map[string]bool
	failGets map[string]bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{
		Memory:   kv.NewMemory(),
		failSets: map[string]bool{},
		failGets: map[string]bool{},
	}
}

func (f *flakyStore) failSet(key string, fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSets[key] = fail
}

func (f *flakyStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	fail := f.failGets[key]
	f.mu.Unlock()
	if fail {
		return "", errDiskFull
	}
	return f.Memory.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	fail := f.failSets[key]
	f.mu.Unlock()
	if fail {
		return errDiskFull
	}
	return f.Memory.Set(ctx, key, value)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

// stepClock returns a fixed instant that only moves when advanced.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ORD-%04d", n)
	}
}

func validCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{
		Name:          "Aisyah Rahman",
		Phone:         "0123456789",
		Email:         "aisyah@example.com",
		Address:       "12 Jalan Bukit",
		City:          "Kuala Lumpur",
		Postcode:      "50450",
		State:         "Selangor",
		PaymentMethod: "cod",
	}
}

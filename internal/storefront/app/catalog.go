package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jcmexdev/fantasy-books/internal/pkg/listquery"
	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
	"github.com/jcmexdev/fantasy-books/internal/storefront/ports"
)

// BookQueryConfig drives the storefront and inventory book listings.
var BookQueryConfig = listquery.Config[domain.Book]{
	SearchFields: func(b domain.Book) []string {
		return []string{b.Title, b.Author, b.Genre, b.Description}
	},
	Category: func(b domain.Book) string { return b.Genre },
	Sorts: map[listquery.SortOption]listquery.Comparator[domain.Book]{
		listquery.SortTitleAsc:   listquery.ByText(bookTitle),
		listquery.SortTitleDesc:  listquery.Reverse(listquery.ByText(bookTitle)),
		listquery.SortPriceAsc:   compareBookPrice,
		listquery.SortPriceDesc:  listquery.Reverse(compareBookPrice),
		listquery.SortRatingDesc: listquery.Reverse(listquery.ByOrdered(func(b domain.Book) float64 { return b.Rating })),
	},
	PerPage: listquery.DefaultCatalogPerPage,
}

func bookTitle(b domain.Book) string { return b.Title }

var compareBookPrice listquery.Comparator[domain.Book] = func(a, b domain.Book) int {
	return a.Price.Cmp(b.Price)
}

// Catalog is the read-mostly book store. It seeds itself on first load.
type Catalog struct {
	mu     sync.Mutex
	store  ports.KVStore
	books  []domain.Book
	loaded bool
}

func NewCatalog(store ports.KVStore) *Catalog {
	return &Catalog{store: store}
}

// Load reads the catalog, writing SeedBooks when none is stored yet. When the
// stored catalog cannot be read or decoded the seed is served from memory,
// the store is left as is and the error is returned for logging.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Catalog) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	raw, err := c.store.Get(ctx, CatalogKey)
	if err != nil {
		c.fallback()
		return fmt.Errorf("load catalog: %w", err)
	}

	if raw == "" {
		c.books = SeedBooks()
		c.loaded = true
		if err := c.save(ctx); err != nil {
			slog.WarnContext(ctx, "failed to persist seeded catalog", "error", err)
		}
		slog.InfoContext(ctx, "catalog seeded", "books", len(c.books))
		return nil
	}

	var books []domain.Book
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		c.fallback()
		return fmt.Errorf("decode catalog: %w", err)
	}
	c.books = books
	c.loaded = true
	return nil
}

func (c *Catalog) fallback() {
	c.books = SeedBooks()
	c.loaded = true
}

func (c *Catalog) save(ctx context.Context) error {
	b, err := json.Marshal(c.books)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return c.store.Set(ctx, CatalogKey, string(b))
}

// Reload drops the in-memory copy and reads the store again.
func (c *Catalog) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	return c.load(ctx)
}

func (c *Catalog) snapshot(ctx context.Context) []domain.Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		slog.WarnContext(ctx, "catalog unavailable", "error", err)
	}
	return slices.Clone(c.books)
}

func (c *Catalog) All(ctx context.Context) []domain.Book {
	return c.snapshot(ctx)
}

func (c *Catalog) ByID(ctx context.Context, id int) (domain.Book, error) {
	for _, b := range c.snapshot(ctx) {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Book{}, fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
}

// Genres returns the distinct genres, sorted.
func (c *Catalog) Genres(ctx context.Context) []string {
	seen := map[string]bool{}
	var genres []string
	for _, b := range c.snapshot(ctx) {
		if !seen[b.Genre] {
			seen[b.Genre] = true
			genres = append(genres, b.Genre)
		}
	}
	slices.SortFunc(genres, listquery.CompareText)
	return genres
}

func (c *Catalog) Stats(ctx context.Context) domain.BookStats {
	return domain.ComputeBookStats(c.snapshot(ctx))
}

// List runs a listing query over the catalog.
func (c *Catalog) List(ctx context.Context, st listquery.State) (listquery.Result[domain.Book], listquery.State) {
	return listquery.Run(c.snapshot(ctx), BookQueryConfig, st)
}

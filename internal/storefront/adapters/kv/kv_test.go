package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/fantasy-books/internal/storefront/ports"
)

func exerciseStore(t *testing.T, store ports.KVStore) {
	t.Helper()
	ctx := context.Background()

	val, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, store.Set(ctx, "cart", `[{"bookId":1}]`))
	val, err = store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"bookId":1}]`, val)

	require.NoError(t, store.Set(ctx, "cart", `[]`))
	val, err = store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)

	require.NoError(t, store.Remove(ctx, "cart"))
	require.NoError(t, store.Remove(ctx, "cart"))
	val, err = store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestMemory(t *testing.T) {
	store := NewMemory()
	defer store.Close()
	exerciseStore(t, store)
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	store, err := OpenSQLite(path)
	require.NoError(t, err)
	exerciseStore(t, store)

	require.NoError(t, store.Set(context.Background(), "orders", `[1]`))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	val, err := reopened.Get(context.Background(), "orders")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, val)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, store)

	store, err = Open(ctx, Options{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "kv.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, store)
	require.NoError(t, store.Close())

	_, err = Open(ctx, Options{Driver: "etcd"})
	assert.Error(t, err)
}

func TestRedisKey(t *testing.T) {
	r := NewRedis("localhost:0", "storefront")
	defer r.Close()
	assert.Equal(t, "storefront:fantasy_books_cart", r.Key("fantasy_books_cart"))

	bare := NewRedis("localhost:0", "")
	defer bare.Close()
	assert.Equal(t, "fantasy_books_cart", bare.Key("fantasy_books_cart"))
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/fantasy-books/internal/storefront/orderlog"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "orderlog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndHistory(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	entries := []*orderlog.Entry{
		{OrderID: "ORD-1", Event: orderlog.EventStepDone, Step: "persist_order", At: base},
		{OrderID: "ORD-1", Event: orderlog.EventCreated, ToStatus: "pending", At: base.Add(time.Millisecond)},
		{OrderID: "ORD-2", Event: orderlog.EventCreated, ToStatus: "pending", At: base},
		{OrderID: "ORD-1", Event: orderlog.EventStatusChanged, FromStatus: "pending", ToStatus: "shipped",
			TraceID: "4bf92f3577b34da6a3ce929d0e0e4736", SpanID: "00f067aa0ba902b7", At: base.Add(time.Second)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Save(ctx, e))
	}

	history, err := repo.History(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, orderlog.EventStepDone, history[0].Event)
	assert.Equal(t, "persist_order", history[0].Step)
	assert.Equal(t, orderlog.EventCreated, history[1].Event)
	assert.Equal(t, orderlog.EventStatusChanged, history[2].Event)
	assert.Equal(t, "pending", history[2].FromStatus)
	assert.Equal(t, "shipped", history[2].ToStatus)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", history[2].TraceID)
	assert.True(t, base.Add(time.Second).Equal(history[2].At))
	assert.Empty(t, history[0].Detail)
}

func TestHistory_Unknown(t *testing.T) {
	repo := openTestRepo(t)
	history, err := repo.History(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTimeRoundTrip(t *testing.T) {
	ts := time.Date(2026, 10, 18, 8, 30, 1, 123456789, time.UTC)
	got, err := parseTime(formatTime(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(got))
}

// Package sqlite provides a SQLite-backed orderlog.Repository.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/fantasy-books/internal/storefront/orderlog"

	// Pure-Go driver, registered as "sqlite". No CGO needed in the image.
	_ "modernc.org/sqlite"
)

// The table is append-only; the latest row per order_id is its current
// state in the log.
const schema = `
CREATE TABLE IF NOT EXISTS order_log (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id     TEXT NOT NULL,
    event        TEXT NOT NULL,
    step         TEXT NOT NULL DEFAULT '',
    from_status  TEXT NOT NULL DEFAULT '',
    to_status    TEXT NOT NULL DEFAULT '',
    detail       TEXT,
    trace_id     TEXT NOT NULL DEFAULT '',
    span_id      TEXT NOT NULL DEFAULT '',
    at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_log_order_id ON order_log(order_id, at);
CREATE INDEX IF NOT EXISTS idx_order_log_trace_id ON order_log(trace_id);
`

var _ orderlog.Repository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
//
//	repo, err := sqlite.Open("./data/orderlog.db")
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Save(ctx context.Context, entry *orderlog.Entry) error {
	const q = `
		INSERT INTO order_log
			(order_id, event, step, from_status, to_status, detail, trace_id, span_id, at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderID,
		string(entry.Event),
		entry.Step,
		entry.FromStatus,
		entry.ToStatus,
		nullableString(entry.Detail),
		entry.TraceID,
		entry.SpanID,
		formatTime(entry.At),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save order log for %q: %w", entry.OrderID, err)
	}
	return nil
}

// History returns the entries for orderID, oldest first.
func (r *Repository) History(ctx context.Context, orderID string) ([]orderlog.Entry, error) {
	const q = `
		SELECT order_id, event, step, from_status, to_status, COALESCE(detail, ''),
		       trace_id, span_id, at
		FROM   order_log
		WHERE  order_id = ?
		ORDER  BY at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: history for %q: %w", orderID, err)
	}
	defer rows.Close()

	var out []orderlog.Entry
	for rows.Next() {
		var e orderlog.Entry
		var at string
		if err := rows.Scan(&e.OrderID, &e.Event, &e.Step, &e.FromStatus, &e.ToStatus,
			&e.Detail, &e.TraceID, &e.SpanID, &at); err != nil {
			return nil, fmt.Errorf("sqlite: scan order log: %w", err)
		}
		if e.At, err = parseTime(at); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: history for %q: %w", orderID, err)
	}
	return out, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

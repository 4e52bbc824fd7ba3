// Package kv provides the key-value drivers behind ports.KVStore.
package kv

import (
	"context"
	"fmt"

	"github.com/jcmexdev/fantasy-books/internal/storefront/ports"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Options configures Open.
type Options struct {
	Driver     string
	SQLitePath string
	RedisAddr  string
	Namespace  string
}

// Open returns the store selected by opts.Driver.
func Open(ctx context.Context, opts Options) (ports.KVStore, error) {
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQLite(opts.SQLitePath)
	case DriverRedis:
		r := NewRedis(opts.RedisAddr, opts.Namespace)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("kv: unknown driver %q", opts.Driver)
	}
}

package ports

import "context"

// KVStore is the key-value persistence medium. Values are JSON strings; Get
// returns "" with a nil error for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

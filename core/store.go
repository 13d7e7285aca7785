package core

import (
	"context"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by a KVStore when the requested key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the client-local key/value store backing the student session.
// Values are opaque strings (JSON documents in practice).
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

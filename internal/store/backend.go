package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Backend.Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is the key-value primitive the Store is built on.
// Values are opaque bytes; the Store owns the encoding.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key in a single write.
	Put(ctx context.Context, key string, value []byte) error

	// PutMany stores every entry of values atomically: either all keys are
	// written or none are.
	PutMany(ctx context.Context, values map[string][]byte) error

	// Each calls fn for every stored key in key order.
	Each(ctx context.Context, fn func(key string, value []byte) error) error

	// Close releases the backend. Safe to call more than once.
	Close() error
}

// Backend kinds accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// ValidBackends lists the accepted backend kinds.
var ValidBackends = []string{BackendSQLite, BackendBolt}

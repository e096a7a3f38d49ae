package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/smartstock/internal/model"
)

// Storage keys, one per collection.
const (
	KeyCategories = "stock_categories"
	KeyProducts   = "stock_products"
	KeyEntries    = "stock_entries"
	KeyDebts      = "stock_debts"
)

// Store reads and writes the four shop collections on top of a Backend.
// It holds no cached state; every call goes to the backend.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report fallback reads.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New wraps an already opened backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open opens the database at path with the named backend kind.
func Open(path, kind string, opts ...Option) (*Store, error) {
	var (
		backend Backend
		err     error
	)
	switch kind {
	case BackendSQLite, "":
		backend, err = OpenSQLite(path)
	case BackendBolt:
		backend, err = OpenBolt(path)
	default:
		return nil, fmt.Errorf("unknown backend %q: must be one of %v", kind, ValidBackends)
	}
	if err != nil {
		return nil, err
	}
	return New(backend, opts...), nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

// load decodes the list stored under key. Any failure yields fallback().
func load[T any](ctx context.Context, s *Store, key string, fallback func() []T) []T {
	data, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("collection read failed, using default", "key", key, "error", err)
		}
		return fallback()
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("collection corrupt, using default", "key", key, "error", err)
		return fallback()
	}
	// A stored JSON null decodes to a nil slice and counts as not stored.
	if items == nil {
		return fallback()
	}
	return items
}

// save encodes items and writes them under key. A nil slice is stored as [].
func save[T any](ctx context.Context, s *Store, key string, items []T) error {
	data, err := encodeList(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.backend.Put(ctx, key, data)
}

func encodeList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func emptyEntries() []model.StockEntry { return []model.StockEntry{} }
func emptyDebts() []model.DebtEntry    { return []model.DebtEntry{} }

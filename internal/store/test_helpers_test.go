package store

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/roach88/smartstock/internal/model"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T, kind string, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, kind, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// forEachBackend runs fn once per backend kind as a subtest.
func forEachBackend(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Helper()
	for _, kind := range ValidBackends {
		t.Run(kind, func(t *testing.T) {
			fn(t, createTestStore(t, kind))
		})
	}
}

// bufferLogger returns a logger writing text records into the returned buffer.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func createTestEntry(id string, ts int64) model.StockEntry {
	return model.StockEntry{
		ID:           id,
		ProductID:    "p1",
		ProductName:  "โค้ก 325มล.",
		CategoryID:   "cat_soda",
		Quantity:     1,
		PricePerUnit: decimal.NewFromInt(15),
		TotalPrice:   decimal.NewFromInt(15),
		Timestamp:    ts,
	}
}

func createTestDebt(id, customer string, amount int64) model.DebtEntry {
	return model.DebtEntry{
		ID:           id,
		CustomerName: customer,
		Description:  "ค่าเบียร์",
		Amount:       decimal.NewFromInt(amount),
		Timestamp:    1700000000000,
	}
}

package store

import (
	"context"
	"fmt"

	"github.com/roach88/smartstock/internal/model"
)

// Categories returns the stored categories, or the default seed.
func (s *Store) Categories(ctx context.Context) []model.Category {
	return load(ctx, s, KeyCategories, model.DefaultCategories)
}

// SaveCategories overwrites the stored categories.
func (s *Store) SaveCategories(ctx context.Context, cats []model.Category) error {
	return save(ctx, s, KeyCategories, cats)
}

// Products returns the stored products, or the default seed.
func (s *Store) Products(ctx context.Context) []model.Product {
	return load(ctx, s, KeyProducts, model.DefaultProducts)
}

// SaveProducts overwrites the stored products.
func (s *Store) SaveProducts(ctx context.Context, prods []model.Product) error {
	return save(ctx, s, KeyProducts, prods)
}

// Entries returns the stored entries, newest first, or an empty slice.
func (s *Store) Entries(ctx context.Context) []model.StockEntry {
	return load(ctx, s, KeyEntries, emptyEntries)
}

// SaveEntries overwrites the stored entries.
func (s *Store) SaveEntries(ctx context.Context, entries []model.StockEntry) error {
	return save(ctx, s, KeyEntries, entries)
}

// AddEntry prepends e to the stored entries and returns the updated list.
func (s *Store) AddEntry(ctx context.Context, e model.StockEntry) ([]model.StockEntry, error) {
	updated := prepend(e, s.Entries(ctx))
	if err := s.SaveEntries(ctx, updated); err != nil {
		return nil, fmt.Errorf("add entry: %w", err)
	}
	return updated, nil
}

// Debts returns the stored debts, newest first, or an empty slice.
func (s *Store) Debts(ctx context.Context) []model.DebtEntry {
	return load(ctx, s, KeyDebts, emptyDebts)
}

// SaveDebts overwrites the stored debts.
func (s *Store) SaveDebts(ctx context.Context, debts []model.DebtEntry) error {
	return save(ctx, s, KeyDebts, debts)
}

// AddDebt prepends d to the stored debts and returns the updated list.
func (s *Store) AddDebt(ctx context.Context, d model.DebtEntry) ([]model.DebtEntry, error) {
	updated := prepend(d, s.Debts(ctx))
	if err := s.SaveDebts(ctx, updated); err != nil {
		return nil, fmt.Errorf("add debt: %w", err)
	}
	return updated, nil
}

// DeleteDebt removes the debt with the given id and returns the remaining
// debts. Unknown ids leave the list unchanged.
func (s *Store) DeleteDebt(ctx context.Context, id string) ([]model.DebtEntry, error) {
	debts := s.Debts(ctx)
	updated := make([]model.DebtEntry, 0, len(debts))
	for _, d := range debts {
		if d.ID != id {
			updated = append(updated, d)
		}
	}
	if err := s.SaveDebts(ctx, updated); err != nil {
		return nil, fmt.Errorf("delete debt: %w", err)
	}
	return updated, nil
}

// Collections is a partial replacement of the stored state.
// Nil fields are left untouched by ReplaceCollections.
type Collections struct {
	Categories []model.Category
	Products   []model.Product
	Entries    []model.StockEntry
	Debts      []model.DebtEntry
}

// ReplaceCollections overwrites every non-nil collection in one backend
// transaction. Either all of them are written or none are.
func (s *Store) ReplaceCollections(ctx context.Context, c Collections) error {
	values := make(map[string][]byte, 4)

	if err := putEncoded(values, KeyCategories, c.Categories); err != nil {
		return err
	}
	if err := putEncoded(values, KeyProducts, c.Products); err != nil {
		return err
	}
	if err := putEncoded(values, KeyEntries, c.Entries); err != nil {
		return err
	}
	if err := putEncoded(values, KeyDebts, c.Debts); err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}
	return s.backend.PutMany(ctx, values)
}

// Snapshot reads all four collections.
func (s *Store) Snapshot(ctx context.Context) Collections {
	return Collections{
		Categories: s.Categories(ctx),
		Products:   s.Products(ctx),
		Entries:    s.Entries(ctx),
		Debts:      s.Debts(ctx),
	}
}

func putEncoded[T any](values map[string][]byte, key string, items []T) error {
	if items == nil {
		return nil
	}
	data, err := encodeList(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	values[key] = data
	return nil
}

func prepend[T any](item T, list []T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

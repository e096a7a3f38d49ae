// Package store provides durable key-value storage for the SmartStock collections.
//
// The shop state is four independently keyed JSON documents:
//   - stock_categories: []model.Category
//   - stock_products:   []model.Product
//   - stock_entries:    []model.StockEntry (newest first)
//   - stock_debts:      []model.DebtEntry  (newest first)
//
// # Read Semantics
//
// Reads never fail. A missing key, a backend error or a document that does
// not parse yields the default seed (categories, products) or an empty slice
// (entries, debts). The failure is logged at WARN.
//
// # Write Semantics
//
// Each Save* call is a single write of one key. ReplaceCollections writes any
// subset of the keys in one backend transaction. There is no locking across
// read-modify-write cycles; the store assumes a single writer.
//
// # Backends
//
//   - SQLite (default): one row per key, WAL mode, schema embedded in schema.sql
//   - bbolt: one bucket, one key per collection
package store

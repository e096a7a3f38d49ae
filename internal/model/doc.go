// Package model defines the entities persisted by SmartStock.
//
// This package contains type definitions, the default seed and id generation
// only. Every other internal package imports model; model imports nothing
// internal.
//
// Key constraints:
//   - Money is decimal.Decimal, written to JSON as a bare number
//   - Timestamps are epoch milliseconds (int64)
//   - JSON tags use camelCase so backups stay readable by older exports
package model

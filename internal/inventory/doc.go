// Package inventory holds the pure domain operations of the shop: building
// entries and debts, the ice leftover calculation, sales aggregation and the
// referential guard on category deletion.
//
// Every function operates on snapshots passed in by the caller and returns
// new values; nothing here touches storage.
package inventory

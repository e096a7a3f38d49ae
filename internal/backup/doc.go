// Package backup exports the shop state to a single document and imports it back.
//
// A backup is {categories, products, entries, debts, exportedAt}. Import is
// all-or-nothing: the document is parsed and validated against schema.cue
// before any collection is written, and the collections it carries are
// replaced in one store transaction. Keys absent from the document (or null)
// leave the stored collection untouched.
package backup

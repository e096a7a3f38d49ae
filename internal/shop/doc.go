// Package shop is the state container the presentation layer talks to.
//
// A Shop keeps the last loaded snapshot of the four collections, applies
// mutations through the store, and publishes the new snapshot to subscribers
// on every successful change. Snapshots are never modified in place; each
// mutation installs fresh slices, so a State handed to a subscriber stays
// valid after later mutations.
package shop

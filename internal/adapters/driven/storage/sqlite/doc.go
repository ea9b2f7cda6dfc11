// Package sqlite provides a SQLite-backed implementation of the
// section store using modernc.org/sqlite (pure Go, no cgo).
//
// The store holds at most one document: ingesting replaces everything.
// Persistence exists so separate command invocations share the same
// active document, not to build a library over time.
package sqlite

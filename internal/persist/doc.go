// Package persist provides keyed blob stores for the widget layout: an
// in-memory store for tests, a JSON file on disk and an embedded SQLite
// database. All of them satisfy store.Persistence.
package persist

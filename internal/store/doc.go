// Package store owns the ordered widget collection. It assigns ids, keeps at
// least one widget alive, persists the whole collection after every change and
// tells observers about the new state.
package store

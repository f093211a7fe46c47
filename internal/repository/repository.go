// Package repository holds the in-memory stores backing the API. Every
// store is an explicitly owned object constructed at startup and
// injected into the services; there is no process-wide state. Ids come
// from per-store monotonic counters and are never reused, deletions
// included.
package repository

import "errors"

// ErrNotFound is returned when a record does not exist in a store.
var ErrNotFound = errors.New("record not found")

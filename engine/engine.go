// Package engine defines the contract between the object store and an
// embedded ordered key-value engine.
//
// The store needs exactly three primitives — point get, point put, and
// an atomic multi-put batch — plus a way to tell "key absent" apart
// from an I/O failure. Any engine satisfying the Engine interface is
// substitutable; the subpackages provide pebble, sqlite3, and
// in-memory implementations along with composable decorators.
package engine

import "context"

// Write is one key/value pair in an atomic batch.
type Write struct {
	Key, Value []byte
}

// Engine is an embedded byte-key/byte-value store.
//
// Implementations must be safe for concurrent use.
type Engine interface {
	// Get returns the value stored under key. An absent key yields
	// grove.ErrNotFound; any other error is an engine failure.
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Put stores value under key, replacing any existing value.
	Put(ctx context.Context, key, value []byte) error

	// WriteBatch applies writes atomically: either every pair becomes
	// durable and visible or none do, even across a process crash
	// between the call and its durability acknowledgment. No reader
	// may ever observe a partially applied batch.
	WriteBatch(ctx context.Context, writes []Write) error
}

// Lister is an optional Engine capability: iteration over keys in
// lexicographic order, beginning with the first key after start.
// If the callback returns an error, Keys exits with that error.
type Lister interface {
	Keys(ctx context.Context, start []byte, f func(key []byte) error) error
}

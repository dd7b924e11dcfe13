// Package pebble implements an engine backed by a pebble database,
// an embedded ordered key-value store with atomic synced batches.
package pebble

import (
	"bytes"
	"context"

	pdb "github.com/cockroachdb/pebble"
	"github.com/pkg/errors"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/engine"
)

var (
	_ engine.Engine = &Engine{}
	_ engine.Lister = &Engine{}
)

// Engine is a pebble-based engine.
type Engine struct {
	db *pdb.DB
}

// Open opens (creating if necessary) the pebble database at path.
func Open(path string, opts *pdb.Options) (*Engine, error) {
	db, err := pdb.Open(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening pebble db at %s", path)
	}
	return &Engine{db: db}, nil
}

// New produces an Engine using an already-open database.
func New(db *pdb.DB) *Engine {
	return &Engine{db: db}
}

// Close closes the underlying database.
func (e *Engine) Close() error {
	return e.db.Close()
}

// Get gets the value stored under key.
// The returned slice is a copy the caller owns.
func (e *Engine) Get(_ context.Context, key []byte) ([]byte, error) {
	v, closer, err := e.db.Get(key)
	if errors.Is(err, pdb.ErrNotFound) {
		return nil, grove.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := append([]byte(nil), v...)
	return out, closer.Close()
}

// Put durably stores value under key.
func (e *Engine) Put(_ context.Context, key, value []byte) error {
	return e.db.Set(key, value, pdb.Sync)
}

// WriteBatch commits all writes in one synced pebble batch,
// which is atomic across crashes.
func (e *Engine) WriteBatch(_ context.Context, writes []engine.Write) error {
	b := e.db.NewBatch()
	defer b.Close() //nolint:errcheck

	for _, w := range writes {
		if err := b.Set(w.Key, w.Value, nil); err != nil {
			return errors.Wrap(err, "adding pair to batch")
		}
	}
	return errors.Wrap(b.Commit(pdb.Sync), "committing batch")
}

// Keys produces all keys after start, in lexicographic order.
func (e *Engine) Keys(_ context.Context, start []byte, f func(key []byte) error) error {
	iter, err := e.db.NewIter(&pdb.IterOptions{LowerBound: start})
	if err != nil {
		return errors.Wrap(err, "creating iterator")
	}
	defer iter.Close() //nolint:errcheck

	for valid := iter.First(); valid; valid = iter.Next() {
		key := iter.Key()
		if bytes.Equal(key, start) {
			// The lower bound is inclusive; iteration begins after start.
			continue
		}
		if err := f(append([]byte(nil), key...)); err != nil {
			return err
		}
	}
	return iter.Error()
}

func init() {
	engine.Register("pebble", func(_ context.Context, conf map[string]interface{}) (engine.Engine, error) {
		path, ok := conf["path"].(string)
		if !ok {
			return nil, errors.New(`missing "path" parameter`)
		}
		return Open(path, &pdb.Options{})
	})
}

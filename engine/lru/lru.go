// Package lru implements an engine that acts as a least-recently-used
// read cache for a nested engine.
//
// It caches whole values by key. Stored objects are immutable, so a
// cached value can never go stale; the store facade itself stays
// cache-free, and callers opt in by composing this wrapper at the
// engine boundary.
package lru

import (
	"context"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/grovefs/grove/engine"
)

var (
	_ engine.Engine = &Engine{}
	_ engine.Lister = &Engine{}
)

// Engine is a memory-based LRU cache in front of a nested engine.
// Writes pass through.
type Engine struct {
	c *lru.Cache // string(key) -> []byte
	e engine.Engine
}

// New produces a new Engine backed by `e` and caching up to `size` values.
func New(e engine.Engine, size int) (*Engine, error) {
	c, err := lru.New(size)
	return &Engine{e: e, c: c}, err
}

// Get gets the value stored under key.
// Cached bytes never escape: the caller always receives its own copy,
// so mutating a returned slice cannot poison later reads.
func (e *Engine) Get(ctx context.Context, key []byte) ([]byte, error) {
	if v, ok := e.c.Get(string(key)); ok {
		return append([]byte(nil), v.([]byte)...), nil
	}
	v, err := e.e.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	e.c.Add(string(key), append([]byte(nil), v...))
	return v, nil
}

// Put stores value under key and caches a copy of it.
func (e *Engine) Put(ctx context.Context, key, value []byte) error {
	if err := e.e.Put(ctx, key, value); err != nil {
		return err
	}
	e.c.Add(string(key), append([]byte(nil), value...))
	return nil
}

// WriteBatch passes the batch through, caching a copy of each pair on
// success.
func (e *Engine) WriteBatch(ctx context.Context, writes []engine.Write) error {
	if err := e.e.WriteBatch(ctx, writes); err != nil {
		return err
	}
	for _, w := range writes {
		e.c.Add(string(w.Key), append([]byte(nil), w.Value...))
	}
	return nil
}

// Keys delegates iteration to the nested engine.
func (e *Engine) Keys(ctx context.Context, start []byte, f func([]byte) error) error {
	lister, ok := e.e.(engine.Lister)
	if !ok {
		return errors.New("nested engine does not support key iteration")
	}
	return lister.Keys(ctx, start, f)
}

func init() {
	engine.Register("lru", func(ctx context.Context, conf map[string]interface{}) (engine.Engine, error) {
		size, ok := conf["size"].(int)
		if !ok {
			if f, ok2 := conf["size"].(float64); ok2 {
				// JSON configs decode numbers as float64.
				size, ok = int(f), true
			}
		}
		if !ok {
			return nil, errors.New(`missing "size" parameter`)
		}
		nested, ok := conf["nested"].(map[string]interface{})
		if !ok {
			return nil, errors.New(`missing "nested" parameter`)
		}
		nestedType, ok := nested["type"].(string)
		if !ok {
			return nil, errors.New(`"nested" parameter missing "type"`)
		}
		nestedEngine, err := engine.Create(ctx, nestedType, nested)
		if err != nil {
			return nil, errors.Wrap(err, "creating nested engine")
		}
		return New(nestedEngine, size)
	})
}

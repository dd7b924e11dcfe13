// Package mem implements an in-memory engine.
package mem

import (
	"context"
	"sort"
	"sync"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/engine"
)

var (
	_ engine.Engine = &Engine{}
	_ engine.Lister = &Engine{}
)

// Engine is a memory-based implementation of an engine,
// useful for tests and ephemeral stores.
type Engine struct {
	mu sync.Mutex
	m  map[string][]byte
}

// New produces a new Engine.
func New() *Engine {
	return &Engine{m: make(map[string][]byte)}
}

// Get gets the value stored under key.
func (e *Engine) Get(_ context.Context, key []byte) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.m[string(key)]
	if !ok {
		return nil, grove.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores value under key.
func (e *Engine) Put(_ context.Context, key, value []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.m[string(key)] = append([]byte(nil), value...)
	return nil
}

// WriteBatch applies all writes under one lock acquisition.
// There is no partial-application failure mode in memory.
func (e *Engine) WriteBatch(_ context.Context, writes []engine.Write) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, w := range writes {
		e.m[string(w.Key)] = append([]byte(nil), w.Value...)
	}
	return nil
}

// Keys produces all keys after start, in lexicographic order.
func (e *Engine) Keys(_ context.Context, start []byte, f func(key []byte) error) error {
	e.mu.Lock()
	keys := make([]string, 0, len(e.m))
	for k := range e.m {
		keys = append(keys, k)
	}
	e.mu.Unlock()

	sort.Strings(keys)
	index := sort.SearchStrings(keys, string(start))
	for i := index; i < len(keys); i++ {
		if keys[i] == string(start) {
			continue
		}
		err := f([]byte(keys[i]))
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	engine.Register("mem", func(context.Context, map[string]interface{}) (engine.Engine, error) {
		return New(), nil
	})
}

// Package logging implements an engine that delegates everything to a
// nested engine, logging operations as they happen.
package logging

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"github.com/grovefs/grove/engine"
)

var (
	_ engine.Engine = &Engine{}
	_ engine.Lister = &Engine{}
)

type Engine struct {
	e engine.Engine
}

func New(e engine.Engine) *Engine {
	return &Engine{e: e}
}

func (e *Engine) Get(ctx context.Context, key []byte) ([]byte, error) {
	v, err := e.e.Get(ctx, key)
	if err != nil {
		log.Printf("ERROR Get %x: %s", key, err)
	} else {
		log.Printf("Get %x (%d bytes)", key, len(v))
	}
	return v, err
}

func (e *Engine) Put(ctx context.Context, key, value []byte) error {
	err := e.e.Put(ctx, key, value)
	if err != nil {
		log.Printf("ERROR Put %x: %s", key, err)
	} else {
		log.Printf("Put %x (%d bytes)", key, len(value))
	}
	return err
}

func (e *Engine) WriteBatch(ctx context.Context, writes []engine.Write) error {
	err := e.e.WriteBatch(ctx, writes)
	if err != nil {
		log.Printf("ERROR WriteBatch of %d pairs: %s", len(writes), err)
	} else {
		log.Printf("WriteBatch of %d pairs", len(writes))
	}
	return err
}

func (e *Engine) Keys(ctx context.Context, start []byte, f func([]byte) error) error {
	lister, ok := e.e.(engine.Lister)
	if !ok {
		return errors.New("nested engine does not support key iteration")
	}
	log.Printf("Keys, start=%x", start)
	return lister.Keys(ctx, start, func(key []byte) error {
		err := f(key)
		if err != nil {
			log.Printf("  ERROR in Keys at %x: %s", key, err)
		}
		return err
	})
}

func init() {
	engine.Register("logging", func(ctx context.Context, conf map[string]interface{}) (engine.Engine, error) {
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
		return New(nestedEngine), nil
	})
}

// Package compress implements an engine that compresses and
// uncompresses values on their way into and out of a nested engine.
//
// Keys are stored as-is, so content addressing and key iteration are
// unaffected; only the stored value bytes change shape.
package compress

import (
	"context"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/grovefs/grove/engine"
)

var (
	_ engine.Engine = &Engine{}
	_ engine.Lister = &Engine{}
)

type Engine struct {
	e   engine.Engine
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// New produces an Engine that zstd-compresses values written to `e`.
func New(e engine.Engine) (*Engine, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating zstd encoder")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating zstd decoder")
	}
	return &Engine{e: e, enc: enc, dec: dec}, nil
}

// Get gets and uncompresses the value stored under key.
func (e *Engine) Get(ctx context.Context, key []byte) ([]byte, error) {
	v, err := e.e.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	out, err := e.dec.DecodeAll(v, nil)
	return out, errors.Wrap(err, "uncompressing value")
}

// Put compresses value and stores it under key.
func (e *Engine) Put(ctx context.Context, key, value []byte) error {
	return e.e.Put(ctx, key, e.enc.EncodeAll(value, nil))
}

// WriteBatch compresses each value and passes the batch through,
// preserving its atomicity.
func (e *Engine) WriteBatch(ctx context.Context, writes []engine.Write) error {
	compressed := make([]engine.Write, len(writes))
	for i, w := range writes {
		compressed[i] = engine.Write{Key: w.Key, Value: e.enc.EncodeAll(w.Value, nil)}
	}
	return e.e.WriteBatch(ctx, compressed)
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
	engine.Register("compress", func(ctx context.Context, conf map[string]interface{}) (engine.Engine, error) {
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
		return New(nestedEngine)
	})
}

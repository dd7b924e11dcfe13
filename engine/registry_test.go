package engine

import (
	"context"
	"strings"
	"testing"
)

type nopEngine struct{}

func (nopEngine) Get(context.Context, []byte) ([]byte, error) { return nil, nil }
func (nopEngine) Put(context.Context, []byte, []byte) error { return nil }
func (nopEngine) WriteBatch(context.Context, []Write) error { return nil }

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	var gotConf map[string]interface{}
	Register("nop", func(_ context.Context, conf map[string]interface{}) (Engine, error) {
		gotConf = conf
		return nopEngine{}, nil
	})

	conf := map[string]interface{}{"type": "nop", "extra": "kept"}
	e, err := Create(ctx, "nop", conf)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(nopEngine); !ok {
		t.Errorf("got %T, want nopEngine", e)
	}
	if gotConf["extra"] != "kept" {
		t.Error("conf not passed through to factory")
	}

	_, err = Create(ctx, "bogus", nil)
	if err == nil {
		t.Fatal("no error for unknown engine type")
	}
	if !strings.Contains(err.Error(), "bogus") || !strings.Contains(err.Error(), "nop") {
		t.Errorf("error does not name the unknown and known types: %s", err)
	}
}

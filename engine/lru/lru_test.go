package lru

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/engine/mem"
	"github.com/grovefs/grove/testutil"
)

func TestEngine(t *testing.T) {
	e, err := New(mem.New(), 64)
	if err != nil {
		t.Fatal(err)
	}
	testutil.Engine(context.Background(), t, e)
}

func TestReadWrite(t *testing.T) {
	e, err := New(mem.New(), 64)
	if err != nil {
		t.Fatal(err)
	}
	testutil.ReadWrite(context.Background(), t, e, []byte("cached object store"))
}

func TestCacheHit(t *testing.T) {
	ctx := context.Background()
	nested := mem.New()
	e, err := New(nested, 64)
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Put(ctx, []byte("k"), []byte("v")); err != nil {
		t.Fatal(err)
	}

	// A read served from cache does not consult the nested engine:
	// even after the nested value disappears, the cached one remains.
	fresh := mem.New()
	e.e = fresh

	got, err := e.Get(ctx, []byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("v")) {
		t.Errorf(`got %q, want "v"`, got)
	}

	// An uncached key misses through to the (empty) nested engine.
	if _, err := e.Get(ctx, []byte("other")); !errors.Is(err, grove.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCallerCannotPoisonCache(t *testing.T) {
	ctx := context.Background()
	e, err := New(mem.New(), 64)
	if err != nil {
		t.Fatal(err)
	}

	value := []byte("value")
	if err := e.Put(ctx, []byte("k"), value); err != nil {
		t.Fatal(err)
	}
	value[0] = 'X' // caller keeps ownership of its slice

	got, err := e.Get(ctx, []byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Fatalf(`got %q, want "value"`, got)
	}
	got[0] = 'X' // and of the slices handed back to it

	again, err := e.Get(ctx, []byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, []byte("value")) {
		t.Errorf(`got %q after mutating an earlier read, want "value"`, again)
	}
}

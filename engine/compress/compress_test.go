package compress

import (
	"bytes"
	"context"
	"testing"

	"github.com/grovefs/grove/engine/mem"
	"github.com/grovefs/grove/testutil"
)

func TestEngine(t *testing.T) {
	e, err := New(mem.New())
	if err != nil {
		t.Fatal(err)
	}
	testutil.Engine(context.Background(), t, e)
}

func TestReadWrite(t *testing.T) {
	e, err := New(mem.New())
	if err != nil {
		t.Fatal(err)
	}
	testutil.ReadWrite(context.Background(), t, e, bytes.Repeat([]byte("compressible "), 1000))
}

func TestValuesCompressedAtRest(t *testing.T) {
	ctx := context.Background()
	nested := mem.New()
	e, err := New(nested)
	if err != nil {
		t.Fatal(err)
	}

	value := bytes.Repeat([]byte("aaaaaaaa"), 1024)
	if err := e.Put(ctx, []byte("k"), value); err != nil {
		t.Fatal(err)
	}

	stored, err := nested.Get(ctx, []byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) >= len(value) {
		t.Errorf("stored %d bytes for a %d-byte highly repetitive value", len(stored), len(value))
	}

	got, err := e.Get(ctx, []byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, value) {
		t.Error("round trip mismatch")
	}
}

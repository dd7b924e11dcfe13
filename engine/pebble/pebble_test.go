package pebble

import (
	"context"
	"path/filepath"
	"testing"

	pdb "github.com/cockroachdb/pebble"

	"github.com/grovefs/grove/testutil"
)

func TestEngine(t *testing.T) {
	ctx := context.Background()
	withTestEngine(t, func(e *Engine) {
		testutil.Engine(ctx, t, e)
	})
}

func TestReadWrite(t *testing.T) {
	ctx := context.Background()
	withTestEngine(t, func(e *Engine) {
		testutil.ReadWrite(ctx, t, e, []byte("pebble-backed object store"))
	})
}

func withTestEngine(t *testing.T, fn func(*Engine)) {
	e, err := Open(filepath.Join(t.TempDir(), "db"), &pdb.Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()

	fn(e)
}

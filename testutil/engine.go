// Package testutil provides helpers for testing engine and store
// implementations.
package testutil

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/engine"
)

// Engine exercises the engine contract against an empty engine:
// not-found signaling, put/get round-trips, overwrite, batch
// visibility, and (when supported) ordered key iteration.
func Engine(ctx context.Context, t *testing.T, eng engine.Engine) {
	_, err := eng.Get(ctx, []byte("missing"))
	if !errors.Is(err, grove.ErrNotFound) {
		t.Fatalf("Get of missing key: got %v, want ErrNotFound", err)
	}

	if err := eng.Put(ctx, []byte("k1"), []byte("v1")); err != nil {
		t.Fatal(err)
	}
	got, err := eng.Get(ctx, []byte("k1"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf(`got %q, want "v1"`, got)
	}

	// Put replaces.
	if err := eng.Put(ctx, []byte("k1"), []byte("v1b")); err != nil {
		t.Fatal(err)
	}
	got, err = eng.Get(ctx, []byte("k1"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("v1b")) {
		t.Errorf(`got %q, want "v1b"`, got)
	}

	writes := []engine.Write{
		{Key: []byte("k2"), Value: []byte("v2")},
		{Key: []byte("k3"), Value: []byte("v3")},
		{Key: []byte("k4"), Value: []byte{}},
	}
	if err := eng.WriteBatch(ctx, writes); err != nil {
		t.Fatal(err)
	}
	for _, w := range writes {
		got, err := eng.Get(ctx, w.Key)
		if err != nil {
			t.Fatalf("Get %q after batch: %s", w.Key, err)
		}
		if !bytes.Equal(got, w.Value) {
			t.Errorf("key %q: got %q, want %q", w.Key, got, w.Value)
		}
	}

	lister, ok := eng.(engine.Lister)
	if !ok {
		return
	}

	var keys []string
	err = lister.Keys(ctx, nil, func(key []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"k1", "k2", "k3", "k4"}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("keys not in order: %v", keys)
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	// Iteration starts strictly after the given key.
	keys = keys[:0]
	err = lister.Keys(ctx, []byte("k2"), func(key []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"k3", "k4"}, keys); diff != "" {
		t.Errorf("keys after k2 mismatch (-want +got):\n%s", diff)
	}

	// Errors from the callback propagate.
	boom := errors.New("boom")
	err = lister.Keys(ctx, nil, func([]byte) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("callback error: got %v, want boom", err)
	}
}

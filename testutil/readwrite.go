package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/engine"
	"github.com/grovefs/grove/localstore"
)

// ReadWrite permits testing an engine implementation by writing a blob
// and a tree through a local store backed by it, then reading both
// back to make sure they round-trip.
func ReadWrite(ctx context.Context, t *testing.T, eng engine.Engine, data []byte) {
	s := localstore.New(eng)

	h := localstore.BlobHash(data)
	if err := s.PutBlob(ctx, h, data); err != nil {
		t.Fatal(err)
	}

	blob, err := s.GetBlob(ctx, h)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(blob.Content, data) {
		t.Errorf("blob content mismatch: got %d bytes, want %d", len(blob.Content), len(data))
	}

	sha, err := s.GetSHA1ForBlob(ctx, h)
	if err != nil {
		t.Fatal(err)
	}
	if sha.IsZero() {
		t.Error("raw-content sha1 is zero")
	}

	tree := grove.NewTree([]grove.TreeEntry{
		{Name: "data", Mode: grove.ModeFile, Hash: h},
	})
	th, err := s.PutTree(ctx, tree)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.GetTree(ctx, th)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(tree.Entries, got.Entries); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

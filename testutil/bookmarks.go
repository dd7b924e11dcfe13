package testutil

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/bookmark"
)

// Bookmarks exercises a bookmark.Store implementation against an
// empty store: current-value reads, moves, deletion, repo scoping,
// and the shape of the update log.
func Bookmarks(ctx context.Context, t *testing.T, s bookmark.Store) {
	var (
		h1 = grove.Hash{0x1a}
		h2 = grove.Hash{0x1b}
		h3 = grove.Hash{0x2}
	)

	if _, err := s.Get(ctx, "repo1", "main"); !errors.Is(err, grove.ErrNotFound) {
		t.Fatalf("get before set: got %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "repo1", "main", h1, bookmark.ReasonManual); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "repo1", "main", h2, bookmark.ReasonPull); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "repo1", "feature", h3, bookmark.ReasonPush); err != nil {
		t.Fatal(err)
	}
	// Same name in another repo is independent.
	if err := s.Set(ctx, "repo2", "main", h3, bookmark.ReasonManual); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "repo1", "main")
	if err != nil {
		t.Fatal(err)
	}
	if got != h2 {
		t.Errorf("got %s, want %s", got, h2)
	}
	got, err = s.Get(ctx, "repo2", "main")
	if err != nil {
		t.Fatal(err)
	}
	if got != h3 {
		t.Errorf("repo2 got %s, want %s", got, h3)
	}

	var names []string
	err = s.List(ctx, "repo1", func(name string, _ grove.Hash) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "feature" || names[1] != "main" {
		t.Errorf("list: got %v", names)
	}

	if err := s.Delete(ctx, "repo1", "main", bookmark.ReasonManual); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "repo1", "main"); !errors.Is(err, grove.ErrNotFound) {
		t.Errorf("get after delete: got %v, want ErrNotFound", err)
	}

	var log []bookmark.Entry
	err = s.Log(ctx, "repo1", "main", func(e bookmark.Entry) error {
		log = append(log, e)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(log) != 3 {
		t.Fatalf("log has %d entries, want 3", len(log))
	}

	// Creation: no old hash.
	if log[0].OldHash != nil || log[0].NewHash == nil || *log[0].NewHash != h1 {
		t.Errorf("creation entry: %+v", log[0])
	}
	if log[0].Reason != bookmark.ReasonManual {
		t.Errorf("creation reason %q", log[0].Reason)
	}

	// Move: old and new recorded.
	if log[1].OldHash == nil || *log[1].OldHash != h1 || log[1].NewHash == nil || *log[1].NewHash != h2 {
		t.Errorf("move entry: %+v", log[1])
	}
	if log[1].Reason != bookmark.ReasonPull {
		t.Errorf("move reason %q", log[1].Reason)
	}

	// Deletion: no new hash.
	if log[2].OldHash == nil || *log[2].OldHash != h2 || log[2].NewHash != nil {
		t.Errorf("deletion entry: %+v", log[2])
	}

	// Entries are ordered and timestamped.
	if log[1].At.Before(log[0].At) || log[2].At.Before(log[1].At) {
		t.Error("log timestamps out of order")
	}
}

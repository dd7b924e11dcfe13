package sqlite3

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/bookmark"
	"github.com/grovefs/grove/testutil"
)

func TestBookmarks(t *testing.T) {
	ctx := context.Background()
	withTestStore(ctx, t, func(s *Store) {
		testutil.Bookmarks(ctx, t, s)
	})
}

func withTestStore(ctx context.Context, t *testing.T, fn func(*Store)) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "bookmarks.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	s, err := New(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	fn(s)
}

func TestInvalidReason(t *testing.T) {
	ctx := context.Background()
	withTestStore(ctx, t, func(s *Store) {
		err := s.Set(ctx, "repo", "main", grove.Hash{1}, bookmark.Reason("whim"))
		if err == nil {
			t.Error("no error for invalid reason")
		}
		if err := s.Set(ctx, "repo", "main", grove.Hash{1}, bookmark.ReasonManual); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDeleteAbsent(t *testing.T) {
	ctx := context.Background()
	withTestStore(ctx, t, func(s *Store) {
		err := s.Delete(ctx, "repo", "nope", bookmark.ReasonManual)
		if !errors.Is(err, grove.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

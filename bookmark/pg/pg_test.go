package pg

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/grovefs/grove/testutil"
)

const connVar = "GROVE_PG_TESTING_CONN"

func TestBookmarks(t *testing.T) {
	withStore(t, func(ctx context.Context, s *Store) {
		testutil.Bookmarks(ctx, t, s)
	})
}

func withStore(t *testing.T, f func(context.Context, *Store)) {
	connstr := os.Getenv(connVar)
	if connstr == "" {
		t.Skipf("to run %s, set %s to a valid Postgresql connection string", t.Name(), connVar)
	}

	db, err := sql.Open("postgres", connstr)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	// The contract test wants a pristine store.
	if _, err = db.ExecContext(ctx, `DROP TABLE IF EXISTS bookmarks, bookmark_log`); err != nil {
		t.Fatal(err)
	}

	s, err := New(ctx, db)
	if err != nil {
		t.Fatal(err)
	}

	f(ctx, s)
}

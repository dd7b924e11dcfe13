// Package sqlite3 implements a Sqlite-based bookmark store.
package sqlite3

import (
	"context"
	"database/sql"
	stderrs "errors"
	"time"

	"github.com/bobg/sqlutil"
	_ "github.com/mattn/go-sqlite3" // register the sqlite3 type for sql.Open
	"github.com/pkg/errors"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/bookmark"
)

var _ bookmark.Store = &Store{}

// Store is a Sqlite-based bookmark store.
type Store struct {
	db *sql.DB
}

// Schema is the SQL that New executes.
// It creates the `bookmarks` and `bookmark_log` tables if they do not exist.
// (If they do exist, they must have the columns, constraints, and indexing described here.)
const Schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
  repo TEXT NOT NULL,
  name TEXT NOT NULL,
  hash BLOB NOT NULL,
  PRIMARY KEY (repo, name)
);

CREATE TABLE IF NOT EXISTS bookmark_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  repo TEXT NOT NULL,
  name TEXT NOT NULL,
  old_hash BLOB,
  new_hash BLOB,
  reason TEXT NOT NULL,
  at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS bookmark_log_idx ON bookmark_log (repo, name, id);
`

// New produces a new Store using `db` for storage.
// It expects to create tables `bookmarks` and `bookmark_log`,
// or for those tables already to exist with the correct schema.
// (See variable Schema.)
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	_, err := db.ExecContext(ctx, Schema)
	return &Store{db: db}, err
}

// Get returns the hash the named bookmark currently points at.
func (s *Store) Get(ctx context.Context, repo, name string) (grove.Hash, error) {
	const q = `SELECT hash FROM bookmarks WHERE repo = $1 AND name = $2`

	var b []byte
	err := s.db.QueryRowContext(ctx, q, repo, name).Scan(&b)
	if stderrs.Is(err, sql.ErrNoRows) {
		return grove.Zero, grove.ErrNotFound
	}
	if err != nil {
		return grove.Zero, errors.Wrapf(err, "querying bookmark %s", name)
	}
	return grove.HashFromBytes(b)
}

// Set points the named bookmark at h,
// updating the current-value table and the update log in one transaction.
func (s *Store) Set(ctx context.Context, repo, name string, h grove.Hash, reason bookmark.Reason) error {
	if !reason.Valid() {
		return errors.Errorf("invalid reason %q", reason)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	old, err := currentTx(ctx, tx, repo, name)
	if err != nil {
		return err
	}

	const upsert = `
		INSERT INTO bookmarks (repo, name, hash) VALUES ($1, $2, $3)
		ON CONFLICT (repo, name) DO UPDATE SET hash = excluded.hash`
	if _, err = tx.ExecContext(ctx, upsert, repo, name, h[:]); err != nil {
		return errors.Wrapf(err, "updating bookmark %s", name)
	}

	const logq = `INSERT INTO bookmark_log (repo, name, old_hash, new_hash, reason, at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, logq, repo, name, hashBytes(old), h[:], string(reason), now()); err != nil {
		return errors.Wrap(err, "appending to update log")
	}

	return errors.Wrap(tx.Commit(), "committing")
}

// Delete removes the named bookmark, logging the removal.
func (s *Store) Delete(ctx context.Context, repo, name string, reason bookmark.Reason) error {
	if !reason.Valid() {
		return errors.Errorf("invalid reason %q", reason)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	old, err := currentTx(ctx, tx, repo, name)
	if err != nil {
		return err
	}
	if old == nil {
		return grove.ErrNotFound
	}

	const del = `DELETE FROM bookmarks WHERE repo = $1 AND name = $2`
	if _, err = tx.ExecContext(ctx, del, repo, name); err != nil {
		return errors.Wrapf(err, "deleting bookmark %s", name)
	}

	const logq = `INSERT INTO bookmark_log (repo, name, old_hash, new_hash, reason, at) VALUES ($1, $2, $3, NULL, $4, $5)`
	if _, err = tx.ExecContext(ctx, logq, repo, name, hashBytes(old), string(reason), now()); err != nil {
		return errors.Wrap(err, "appending to update log")
	}

	return errors.Wrap(tx.Commit(), "committing")
}

// List produces all bookmarks in repo, in name order.
func (s *Store) List(ctx context.Context, repo string, f func(string, grove.Hash) error) error {
	const q = `SELECT name, hash FROM bookmarks WHERE repo = $1 ORDER BY name`

	return sqlutil.ForQueryRows(ctx, s.db, q, repo, func(name string, b []byte) error {
		h, err := grove.HashFromBytes(b)
		if err != nil {
			return err
		}
		return f(name, h)
	})
}

// Log produces the named bookmark's update-log entries, oldest first.
func (s *Store) Log(ctx context.Context, repo, name string, f func(bookmark.Entry) error) error {
	const q = `SELECT old_hash, new_hash, reason, at FROM bookmark_log WHERE repo = $1 AND name = $2 ORDER BY id`

	return sqlutil.ForQueryRows(ctx, s.db, q, repo, name, func(oldb, newb []byte, reason, atstr string) error {
		old, err := hashPtr(oldb)
		if err != nil {
			return err
		}
		nw, err := hashPtr(newb)
		if err != nil {
			return err
		}
		at, err := time.Parse(time.RFC3339Nano, atstr)
		if err != nil {
			return errors.Wrapf(err, "parsing time %s", atstr)
		}
		return f(bookmark.Entry{
			Repo:    repo,
			Name:    name,
			OldHash: old,
			NewHash: nw,
			Reason:  bookmark.Reason(reason),
			At:      at,
		})
	})
}

func currentTx(ctx context.Context, tx *sql.Tx, repo, name string) (*grove.Hash, error) {
	const q = `SELECT hash FROM bookmarks WHERE repo = $1 AND name = $2`

	var b []byte
	err := tx.QueryRowContext(ctx, q, repo, name).Scan(&b)
	if stderrs.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "querying bookmark %s", name)
	}
	return hashPtr(b)
}

func hashPtr(b []byte) (*grove.Hash, error) {
	if b == nil {
		return nil, nil
	}
	h, err := grove.HashFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func hashBytes(h *grove.Hash) []byte {
	if h == nil {
		return nil
	}
	return h[:]
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Package sqlite3 implements an engine backed by a Sqlite database.
package sqlite3

import (
	"context"
	"database/sql"
	stderrs "errors"

	"github.com/bobg/sqlutil"
	_ "github.com/mattn/go-sqlite3" // register the sqlite3 type for sql.Open
	"github.com/pkg/errors"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/engine"
)

var (
	_ engine.Engine = &Engine{}
	_ engine.Lister = &Engine{}
)

// Engine is a Sqlite-based engine.
type Engine struct {
	db *sql.DB
}

// Schema is the SQL that New executes.
// It creates the `kv` table if it does not exist.
// (If it does exist, it must have the columns and constraints described here.)
const Schema = `
CREATE TABLE IF NOT EXISTS kv (
  k BLOB PRIMARY KEY NOT NULL,
  v BLOB NOT NULL
);
`

// New produces a new Engine using `db` for storage.
// It expects to create the table `kv`,
// or for that table already to exist with the correct schema.
// (See variable Schema.)
func New(ctx context.Context, db *sql.DB) (*Engine, error) {
	_, err := db.ExecContext(ctx, Schema)
	return &Engine{db: db}, err
}

// Get gets the value stored under key.
func (e *Engine) Get(ctx context.Context, key []byte) ([]byte, error) {
	const q = `SELECT v FROM kv WHERE k = $1`

	var v []byte
	err := e.db.QueryRowContext(ctx, q, key).Scan(&v)
	if stderrs.Is(err, sql.ErrNoRows) {
		return nil, grove.ErrNotFound
	}
	return v, err
}

// Put stores value under key, replacing any existing value.
func (e *Engine) Put(ctx context.Context, key, value []byte) error {
	const q = `INSERT INTO kv (k, v) VALUES ($1, $2) ON CONFLICT (k) DO UPDATE SET v = excluded.v`

	_, err := e.db.ExecContext(ctx, q, key, value)
	return err
}

// WriteBatch applies all writes in a single transaction.
func (e *Engine) WriteBatch(ctx context.Context, writes []engine.Write) error {
	const q = `INSERT INTO kv (k, v) VALUES ($1, $2) ON CONFLICT (k) DO UPDATE SET v = excluded.v`

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	for _, w := range writes {
		if _, err = tx.ExecContext(ctx, q, w.Key, w.Value); err != nil {
			return errors.Wrap(err, "inserting pair")
		}
	}
	return errors.Wrap(tx.Commit(), "committing batch")
}

// Keys produces all keys after start, in lexicographic order.
func (e *Engine) Keys(ctx context.Context, start []byte, f func(key []byte) error) error {
	const q = `SELECT k FROM kv WHERE k > $1 ORDER BY k`

	if start == nil {
		start = []byte{}
	}
	return sqlutil.ForQueryRows(ctx, e.db, q, start, func(k []byte) error {
		return f(k)
	})
}

func init() {
	engine.Register("sqlite3", func(ctx context.Context, conf map[string]interface{}) (engine.Engine, error) {
		conn, ok := conf["conn"].(string)
		if !ok {
			return nil, errors.New(`missing "conn" parameter`)
		}
		db, err := sql.Open("sqlite3", conn)
		if err != nil {
			return nil, errors.Wrap(err, "opening db")
		}
		return New(ctx, db)
	})
}

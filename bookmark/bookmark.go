// Package bookmark records mutable name→hash pointers into the
// content-addressed object graph.
//
// Objects never change, so "the current state of X" is tracked
// outside the object store: a bookmark maps a name, scoped to a
// repository, to the hash it currently points at. Every mutation also
// appends to an update log recording the old hash, the new hash, the
// reason for the change, and when it happened, so the full movement
// history of a bookmark can be audited.
package bookmark

import (
	"context"
	"time"

	"github.com/grovefs/grove"
)

// Reason says why a bookmark moved. The set is closed: stores reject
// anything else.
type Reason string

const (
	ReasonManual Reason = "manual" // an explicit user action
	ReasonPull   Reason = "pull"   // derived from pulling remote changes
	ReasonPush   Reason = "push"   // derived from pushing local changes
)

// Valid tells whether r is one of the recognized reasons.
func (r Reason) Valid() bool {
	switch r {
	case ReasonManual, ReasonPull, ReasonPush:
		return true
	}
	return false
}

// Entry is one row of a bookmark's update log.
// OldHash is nil when the bookmark was created,
// NewHash is nil when it was deleted.
type Entry struct {
	Repo    string
	Name    string
	OldHash *grove.Hash
	NewHash *grove.Hash
	Reason  Reason
	At      time.Time
}

// Store records bookmarks and their update history.
type Store interface {
	// Get returns the hash the named bookmark currently points at,
	// or grove.ErrNotFound.
	Get(ctx context.Context, repo, name string) (grove.Hash, error)

	// Set points the named bookmark at h, creating it if necessary,
	// and appends to the update log in the same transaction.
	Set(ctx context.Context, repo, name string, h grove.Hash, reason Reason) error

	// Delete removes the named bookmark, appending a log entry with a
	// nil new hash. Deleting an absent bookmark is grove.ErrNotFound.
	Delete(ctx context.Context, repo, name string, reason Reason) error

	// List calls f for each bookmark in repo, in name order.
	List(ctx context.Context, repo string, f func(name string, h grove.Hash) error) error

	// Log calls f for each update-log entry for the named bookmark,
	// oldest first.
	Log(ctx context.Context, repo, name string, f func(Entry) error) error
}

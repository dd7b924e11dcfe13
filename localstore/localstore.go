// Package localstore implements a content-addressed object store on
// top of an embedded key-value engine.
//
// The store persists blobs and trees under their content hashes, and
// for each blob additionally records the SHA-1 digest of its raw
// (unframed) content under a derived attribute key, so tools that
// identify content by raw-byte SHA-1 can answer queries without
// rehashing the payload. A blob body and its SHA-1 record are written
// in one atomic engine batch: neither is ever observable without the
// other.
//
// Objects are write-once. There is no update or delete: changed
// content is a new object under a new hash, and identical content
// re-stored is an idempotent redundant write. The store holds no
// mutable state beyond the engine handle and is safe for concurrent
// use whenever the engine is.
package localstore

import (
	"bytes"
	"context"
	"crypto/sha1"

	"github.com/pkg/errors"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/engine"
	"github.com/grovefs/grove/object"
)

// Store is a local content-addressed object store.
type Store struct {
	eng engine.Engine
}

// New produces a Store backed by eng. The caller owns eng's lifetime;
// the store never closes it.
func New(eng engine.Engine) *Store {
	return &Store{eng: eng}
}

// Get reads the raw bytes stored under the primary key for h.
// A missing key yields grove.ErrNotFound; engine failures are wrapped
// with the operation and key.
func (s *Store) Get(ctx context.Context, h grove.Hash) ([]byte, error) {
	data, err := s.eng.Get(ctx, ObjectKey(h))
	if errors.Is(err, grove.ErrNotFound) {
		return nil, grove.ErrNotFound
	}
	return data, errors.Wrapf(err, "getting %s from local store", h)
}

// GetBlob reads and decodes the blob with hash h.
// Malformed framing yields *grove.CorruptError, distinct from a
// missing key.
func (s *Store) GetBlob(ctx context.Context, h grove.Hash) (*grove.Blob, error) {
	data, err := s.Get(ctx, h)
	if err != nil {
		return nil, err
	}
	return object.DecodeBlob(h, bytes.NewReader(data))
}

// GetTree reads and decodes the tree with hash h.
func (s *Store) GetTree(ctx context.Context, h grove.Hash) (*grove.Tree, error) {
	data, err := s.Get(ctx, h)
	if err != nil {
		return nil, err
	}
	return object.DecodeTree(h, bytes.NewReader(data))
}

// GetSHA1ForBlob returns the SHA-1 digest of the raw content of the
// blob with hash h. The digest is queryable exactly when the blob
// itself is: PutBlob writes both in one batch. An attribute value of
// the wrong length is corruption, never silently truncated.
func (s *Store) GetSHA1ForBlob(ctx context.Context, h grove.Hash) (grove.Hash, error) {
	v, err := s.eng.Get(ctx, SHA1Key(h))
	if errors.Is(err, grove.ErrNotFound) {
		return grove.Zero, grove.ErrNotFound
	}
	if err != nil {
		return grove.Zero, errors.Wrapf(err, "getting sha1 for %s from local store", h)
	}
	sha, err := grove.HashFromBytes(v)
	if err != nil {
		return grove.Zero, &grove.CorruptError{Hash: h, Reason: "sha1 attribute has wrong length"}
	}
	return sha, nil
}

// PutBlob stores payload as the blob with content hash h, computing
// the raw-content SHA-1 along the way.
func (s *Store) PutBlob(ctx context.Context, h grove.Hash, payload []byte) error {
	return s.PutBlobWithSHA1(ctx, h, payload, sha1.Sum(payload))
}

// PutBlobWithSHA1 is PutBlob for callers that already know the
// raw-content SHA-1. The framed blob body and the SHA-1 attribute
// record land in one atomic batch, or not at all.
func (s *Store) PutBlobWithSHA1(ctx context.Context, h grove.Hash, payload []byte, sha grove.Hash) error {
	writes := []engine.Write{
		{Key: ObjectKey(h), Value: object.EncodeBlob(payload)},
		{Key: SHA1Key(h), Value: sha[:]},
	}
	err := s.eng.WriteBatch(ctx, writes)
	return errors.Wrapf(err, "putting blob %s in local store", h)
}

// PutTree stores t, computing its content hash first if t.Hash is
// unset, and returns the hash. Trees get no SHA-1 attribute record;
// only blobs do.
func (s *Store) PutTree(ctx context.Context, t *grove.Tree) (grove.Hash, error) {
	enc, err := object.EncodeTree(t)
	if err != nil {
		return grove.Zero, errors.Wrap(err, "serializing tree")
	}
	h := t.Hash
	if h.IsZero() {
		h = sha1.Sum(enc)
		t.Hash = h
	}
	err = s.eng.Put(ctx, ObjectKey(h), enc)
	return h, errors.Wrapf(err, "putting tree %s in local store", h)
}

// Put writes an arbitrary primary key/value pair, bypassing the codec
// and the attribute index. It is the escape hatch for callers that
// manage their own encoding.
func (s *Store) Put(ctx context.Context, key, value []byte) error {
	err := s.eng.Put(ctx, key, value)
	return errors.Wrapf(err, "putting key %x in local store", key)
}

// Hashes calls f for each object hash in the store in lexicographic
// order, beginning after start, skipping attribute records. It errors
// when the underlying engine does not support iteration.
func (s *Store) Hashes(ctx context.Context, start grove.Hash, f func(grove.Hash) error) error {
	lister, ok := s.eng.(engine.Lister)
	if !ok {
		return errors.New("engine does not support key iteration")
	}
	return lister.Keys(ctx, ObjectKey(start), func(key []byte) error {
		if len(key) != grove.HashSize {
			return nil
		}
		h, err := grove.HashFromBytes(key)
		if err != nil {
			return err
		}
		return f(h)
	})
}

package localstore

import (
	"crypto/sha1"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/object"
)

// BlobHash computes the content hash of a blob with the given payload:
// the SHA-1 of its framed representation. Identical payloads always
// yield identical hashes.
func BlobHash(payload []byte) grove.Hash {
	return sha1.Sum(object.EncodeBlob(payload))
}

// TreeHash computes the content hash of t over its framed
// representation, in t's stored entry order.
func TreeHash(t *grove.Tree) (grove.Hash, error) {
	enc, err := object.EncodeTree(t)
	if err != nil {
		return grove.Zero, err
	}
	return sha1.Sum(enc), nil
}

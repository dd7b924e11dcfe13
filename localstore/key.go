package localstore

import "github.com/grovefs/grove"

// attributeSHA1 is the reserved tag byte appended to a blob's hash to
// form the key of its raw-content SHA-1 record. A single byte keeps
// attribute keys short, and since every primary key is exactly
// grove.HashSize bytes, a hash-plus-tag key can never collide with one.
//
// This file is the single source of truth for the key layout; no other
// code concatenates tag bytes onto hashes.
const attributeSHA1 = 's'

// ObjectKey returns the primary storage key for the object with hash
// h: the raw hash bytes, with no extra framing.
func ObjectKey(h grove.Hash) []byte {
	key := make([]byte, grove.HashSize)
	copy(key, h[:])
	return key
}

// SHA1Key returns the attribute key under which the store keeps the
// SHA-1 digest of the raw (unframed) content of the blob with hash h.
func SHA1Key(h grove.Hash) []byte {
	key := make([]byte, grove.HashSize+1)
	copy(key, h[:])
	key[grove.HashSize] = attributeSHA1
	return key
}

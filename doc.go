// Package grove defines the domain types of a local content-addressed
// object store.
//
// The store persists two kinds of immutable objects:
// byte blobs and trees
// (ordered lists of named directory entries).
// Every object is keyed by its content hash:
// the SHA-1 digest of a canonical framed representation of its bytes.
// Because the key is derived from the content,
// storing the same bytes twice is an idempotent no-op,
// and an object can never be updated in place —
// changed content is simply a new object under a new hash.
//
// The subpackages divide the work:
// object translates between domain objects and their framed byte form,
// engine is the contract with an embedded ordered key-value engine
// (plus several implementations of it),
// localstore is the store facade built on both,
// and bookmark records mutable name→hash pointers into the
// otherwise-immutable object graph.
package grove

package grove

import "sort"

// Blob is an immutable byte payload.
// Hash is the blob's content hash, or Zero if not yet computed.
// The content hash covers the framed form of the payload
// (see package object), not the raw bytes alone.
type Blob struct {
	Content []byte
	Hash    Hash
}

// Mode is a tree entry's permission tag, in octal text form without
// leading zeros, exactly as it appears in the serialized tree record.
type Mode string

const (
	ModeFile    Mode = "100644" // regular non-executable file
	ModeExec    Mode = "100755" // executable file
	ModeSymlink Mode = "120000" // symbolic link
	ModeDir     Mode = "40000"  // directory (subtree)
	ModeGitlink Mode = "160000" // commit reference in another repository
)

// Valid tells whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeFile, ModeExec, ModeSymlink, ModeDir, ModeGitlink:
		return true
	}
	return false
}

// IsDir tells whether m marks a subtree entry.
func (m Mode) IsDir() bool {
	return m == ModeDir
}

// TreeEntry is one directory entry: a name, a mode tag, and the hash
// of the child object.
type TreeEntry struct {
	Name string
	Mode Mode
	Hash Hash
}

// Tree is an ordered sequence of directory entries.
// Serialization preserves the stored order,
// so two Trees with the same entries in the same order
// always hash identically.
// Hash is the tree's content hash, or Zero if not yet computed.
type Tree struct {
	Entries []TreeEntry
	Hash    Hash
}

// NewTree builds a Tree from entries in canonical order:
// sorted by name, with subtree names comparing as if they had a
// trailing slash. Building trees this way makes the resulting hash
// independent of the order the caller discovered the entries in.
func NewTree(entries []TreeEntry) *Tree {
	sorted := make([]TreeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortName(sorted[i]) < sortName(sorted[j])
	})
	return &Tree{Entries: sorted}
}

func sortName(e TreeEntry) string {
	if e.Mode.IsDir() {
		return e.Name + "/"
	}
	return e.Name
}

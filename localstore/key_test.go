package localstore

import (
	"bytes"
	"testing"

	"github.com/grovefs/grove"
)

func TestKeyDerivation(t *testing.T) {
	h := grove.Hash{0xde, 0xad, 0xbe, 0xef}

	ok := ObjectKey(h)
	if len(ok) != grove.HashSize {
		t.Errorf("object key is %d bytes, want %d", len(ok), grove.HashSize)
	}
	if !bytes.Equal(ok, h[:]) {
		t.Error("object key is not the raw hash bytes")
	}

	sk := SHA1Key(h)
	if len(sk) != grove.HashSize+1 {
		t.Errorf("sha1 key is %d bytes, want %d", len(sk), grove.HashSize+1)
	}
	if !bytes.Equal(sk[:grove.HashSize], h[:]) {
		t.Error("sha1 key does not start with the raw hash bytes")
	}
	if sk[grove.HashSize] != 's' {
		t.Errorf("sha1 key tag byte is %q, want 's'", sk[grove.HashSize])
	}

	// Derivation must not alias the hash's storage.
	ok[0] = 0xff
	sk[0] = 0xff
	if h[0] != 0xde {
		t.Error("key derivation aliased the hash bytes")
	}
}

package grove

import (
	"bytes"
	"encoding/hex"
)

// HashSize is the byte length of a Hash.
const HashSize = 20

// Hash is the content hash of a stored object: a 20-byte SHA-1-family
// digest computed over the object's framed representation.
// The zero value (see Zero) means "unset / not yet computed."
type Hash [HashSize]byte

// Zero is the zero value of a Hash.
var Zero Hash

// IsZero tells whether h is the unset sentinel.
func (h Hash) IsZero() bool {
	return h == Zero
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Less tells whether h sorts before other, byte-wise.
func (h Hash) Less(other Hash) bool {
	return bytes.Compare(h[:], other[:]) < 0
}

// FromHex parses a 40-character hex string into h.
func (h *Hash) FromHex(s string) error {
	if len(s) != 2*HashSize {
		return ErrBadHashLen
	}
	_, err := hex.Decode(h[:], []byte(s))
	return err
}

// HashFromHex parses a 40-character hex string into a Hash.
func HashFromHex(s string) (Hash, error) {
	var out Hash
	err := out.FromHex(s)
	return out, err
}

// HashFromBytes converts a byte slice into a Hash.
// It is an error for b to be anything other than HashSize bytes long.
func HashFromBytes(b []byte) (Hash, error) {
	var out Hash
	if len(b) != HashSize {
		return out, ErrBadHashLen
	}
	copy(out[:], b)
	return out, nil
}

package grove

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is the error returned when reading a key that does not
// exist. Absence is a normal result, not an engine failure, and is
// never wrapped with extra context.
var ErrNotFound = errors.New("not found")

// ErrBadHashLen is the error returned when a byte slice or hex string
// of the wrong length is presented as a Hash.
var ErrBadHashLen = errors.New("bad hash length")

// CorruptError is the error returned when bytes read back from the
// store do not parse under the expected object framing, or when an
// attribute record has the wrong size. It indicates a bug or on-disk
// corruption, as distinct from a missing key or an engine failure.
type CorruptError struct {
	Hash   Hash
	Reason string
}

// Error hex-encodes the hash only when the message is actually built.
func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt object %s: %s", e.Hash, e.Reason)
}

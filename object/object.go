// Package object translates blobs and trees to and from their framed
// byte form.
//
// Every stored object begins with a short ASCII header naming its kind
// and the decimal byte length of the payload, terminated by a NUL:
//
//	"<kind> <length>\x00<payload>"
//
// A tree's payload is the concatenation of its entry records, each
// "<mode> <name>\x00" followed by the 20-byte child hash. Entry names
// may contain any byte except NUL, so records always round-trip
// unambiguously. The layout is bit-exact with the git object format,
// letting external tools parse stored bytes directly.
//
// The codec performs no storage I/O and computes no hashes. Decoding
// reads from an io.Reader, so payloads split across buffer chunks are
// consumed without reassembly by the caller.
package object

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/grovefs/grove"
)

// Kind literals used in object headers.
const (
	BlobTag = "blob"
	TreeTag = "tree"
)

// maxHeaderLen bounds the header scan: the longest well-formed header
// is a kind tag, a space, the decimal digits of a 63-bit length, and
// the NUL terminator. Anything longer is corrupt.
const maxHeaderLen = len(TreeTag) + 1 + 19 + 1

// decodePayload reads a framed object of the given kind from r and
// returns its payload. The declared length must account for every
// remaining byte exactly.
func decodePayload(h grove.Hash, kind string, r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)

	header, ok := readHeader(br)
	if !ok {
		return nil, &grove.CorruptError{Hash: h, Reason: "object header missing NUL terminator"}
	}

	tag, lenstr, found := strings.Cut(header, " ")
	if !found {
		return nil, &grove.CorruptError{Hash: h, Reason: "malformed object header"}
	}
	if tag != kind {
		return nil, &grove.CorruptError{Hash: h, Reason: "object kind is " + tag + ", want " + kind}
	}
	size, err := strconv.ParseUint(lenstr, 10, 63)
	if err != nil || (len(lenstr) > 1 && lenstr[0] == '0') {
		return nil, &grove.CorruptError{Hash: h, Reason: "bad length in object header"}
	}

	// The declared length is untrusted: the buffer grows only as
	// payload bytes actually arrive, never from the declaration.
	var payload bytes.Buffer
	n, err := io.Copy(&payload, io.LimitReader(br, int64(size)))
	if err != nil {
		return nil, &grove.CorruptError{Hash: h, Reason: "reading payload: " + err.Error()}
	}
	if uint64(n) != size {
		return nil, &grove.CorruptError{Hash: h, Reason: "payload truncated"}
	}
	if _, err := br.ReadByte(); err != io.EOF {
		return nil, &grove.CorruptError{Hash: h, Reason: "bytes past declared payload length"}
	}
	return payload.Bytes(), nil
}

// readHeader consumes bytes up to and including the NUL terminator and
// returns the header text before it.
func readHeader(br *bufio.Reader) (string, bool) {
	var b strings.Builder
	for b.Len() < maxHeaderLen {
		c, err := br.ReadByte()
		if err != nil {
			return "", false
		}
		if c == 0 {
			return b.String(), true
		}
		b.WriteByte(c)
	}
	return "", false
}

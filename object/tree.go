package object

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/grovefs/grove"
)

// EncodeTree frames t's entries, in their stored order, as
// "tree <length>\x00" followed by one record per entry:
// "<mode> <name>\x00" plus the 20-byte child hash.
func EncodeTree(t *grove.Tree) ([]byte, error) {
	var body bytes.Buffer
	for _, e := range t.Entries {
		if !e.Mode.Valid() {
			return nil, errors.Errorf("invalid mode %q for entry %q", e.Mode, e.Name)
		}
		if e.Name == "" {
			return nil, errors.New("empty entry name")
		}
		if strings.IndexByte(e.Name, 0) >= 0 {
			return nil, errors.Errorf("entry name %q contains NUL", e.Name)
		}
		body.WriteString(string(e.Mode))
		body.WriteByte(' ')
		body.WriteString(e.Name)
		body.WriteByte(0)
		body.Write(e.Hash[:])
	}

	buf := make([]byte, 0, len(TreeTag)+maxHeaderLen+body.Len())
	buf = append(buf, TreeTag...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(body.Len()), 10)
	buf = append(buf, 0)
	return append(buf, body.Bytes()...), nil
}

// DecodeTree parses a framed tree from r, reconstructing the entry
// sequence in its serialized order. Like DecodeBlob it tolerates
// chunked input, and h is recorded, not verified.
func DecodeTree(h grove.Hash, r io.Reader) (*grove.Tree, error) {
	payload, err := decodePayload(h, TreeTag, r)
	if err != nil {
		return nil, err
	}

	t := &grove.Tree{Hash: h}
	rest := payload
	for len(rest) > 0 {
		sp := bytes.IndexByte(rest, ' ')
		if sp < 0 {
			return nil, &grove.CorruptError{Hash: h, Reason: "tree entry missing mode separator"}
		}
		mode := grove.Mode(rest[:sp])
		if !mode.Valid() {
			return nil, &grove.CorruptError{Hash: h, Reason: "tree entry has unrecognized mode " + string(mode)}
		}
		rest = rest[sp+1:]

		nul := bytes.IndexByte(rest, 0)
		if nul < 0 {
			return nil, &grove.CorruptError{Hash: h, Reason: "tree entry name unterminated"}
		}
		if nul == 0 {
			return nil, &grove.CorruptError{Hash: h, Reason: "tree entry name empty"}
		}
		name := string(rest[:nul])
		rest = rest[nul+1:]

		if len(rest) < grove.HashSize {
			return nil, &grove.CorruptError{Hash: h, Reason: "tree entry hash truncated"}
		}
		child, _ := grove.HashFromBytes(rest[:grove.HashSize])
		rest = rest[grove.HashSize:]

		t.Entries = append(t.Entries, grove.TreeEntry{Name: name, Mode: mode, Hash: child})
	}
	return t, nil
}

// DecodeTreeBytes parses a framed tree held in a single buffer.
func DecodeTreeBytes(h grove.Hash, data []byte) (*grove.Tree, error) {
	return DecodeTree(h, bytes.NewReader(data))
}

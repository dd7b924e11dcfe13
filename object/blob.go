package object

import (
	"bytes"
	"io"
	"strconv"

	"github.com/grovefs/grove"
)

// EncodeBlob frames payload as "blob <length>\x00<payload>".
func EncodeBlob(payload []byte) []byte {
	buf := make([]byte, 0, len(BlobTag)+maxHeaderLen+len(payload))
	buf = append(buf, BlobTag...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(len(payload)), 10)
	buf = append(buf, 0)
	return append(buf, payload...)
}

// DecodeBlob parses a framed blob from r, which may deliver the bytes
// in arbitrarily small chunks. The hash h is recorded on the returned
// Blob and named in any corruption error; it is not recomputed or
// verified here.
func DecodeBlob(h grove.Hash, r io.Reader) (*grove.Blob, error) {
	payload, err := decodePayload(h, BlobTag, r)
	if err != nil {
		return nil, err
	}
	return &grove.Blob{Content: payload, Hash: h}, nil
}

// DecodeBlobBytes parses a framed blob held in a single buffer.
func DecodeBlobBytes(h grove.Hash, data []byte) (*grove.Blob, error) {
	return DecodeBlob(h, bytes.NewReader(data))
}

package object

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/grovefs/grove"
)

func TestEncodeBlob(t *testing.T) {
	cases := []struct {
		payload string
		want    string
	}{
		{payload: "hello", want: "blob 5\x00hello"},
		{payload: "", want: "blob 0\x00"},
		{payload: "a\x00b", want: "blob 3\x00a\x00b"},
	}
	for _, c := range cases {
		if got := EncodeBlob([]byte(c.payload)); string(got) != c.want {
			t.Errorf("EncodeBlob(%q) = %q, want %q", c.payload, got, c.want)
		}
	}
}

func TestBlobRoundTrip(t *testing.T) {
	f := func(payload []byte) bool {
		h := grove.Hash{0x01}
		got, err := DecodeBlobBytes(h, EncodeBlob(payload))
		if err != nil {
			t.Logf("decode: %s", err)
			return false
		}
		if got.Hash != h {
			return false
		}
		return bytes.Equal(got.Content, payload)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDecodeBlobChunked(t *testing.T) {
	payload := []byte("split across many tiny reads")
	framed := EncodeBlob(payload)

	got, err := DecodeBlob(grove.Zero, iotest.OneByteReader(bytes.NewReader(framed)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Content, payload) {
		t.Errorf("got %q, want %q", got.Content, payload)
	}
}

func TestDecodeBlobCorrupt(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "no NUL", data: "blob 5"},
		{name: "no space", data: "blob\x00"},
		{name: "bad tag", data: "bolb 5\x00hello"},
		{name: "tree tag", data: "tree 5\x00hello"},
		{name: "bad length", data: "blob five\x00hello"},
		{name: "negative length", data: "blob -1\x00"},
		{name: "leading zero", data: "blob 05\x00hello"},
		{name: "truncated payload", data: "blob 6\x00hello"},
		{name: "excess payload", data: "blob 4\x00hello"},
		{name: "runaway header", data: "blob " + strings.Repeat("9", 40) + "\x00"},
		{name: "huge length", data: "blob 9000000000000000000\x00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeBlobBytes(grove.Hash{0xaa}, []byte(c.data))
			var ce *grove.CorruptError
			if !errors.As(err, &ce) {
				t.Fatalf("got %v, want CorruptError", err)
			}
			if ce.Hash != (grove.Hash{0xaa}) {
				t.Errorf("error names hash %s", ce.Hash)
			}
		})
	}
}

func TestEncodeTree(t *testing.T) {
	h1 := grove.Hash{0x11}
	h2 := grove.Hash{0x22}
	tree := &grove.Tree{Entries: []grove.TreeEntry{
		{Name: "a.txt", Mode: grove.ModeFile, Hash: h1},
		{Name: "b", Mode: grove.ModeDir, Hash: h2},
	}}

	got, err := EncodeTree(tree)
	if err != nil {
		t.Fatal(err)
	}

	body := "100644 a.txt\x00" + string(h1[:]) + "40000 b\x00" + string(h2[:])
	want := "tree " + strconv.Itoa(len(body)) + "\x00" + body
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTreeRoundTrip(t *testing.T) {
	tree := &grove.Tree{Entries: []grove.TreeEntry{
		{Name: "name with spaces", Mode: grove.ModeFile, Hash: grove.Hash{1}},
		{Name: "sub", Mode: grove.ModeDir, Hash: grove.Hash{2}},
		{Name: "ex\xffotic\x01bytes", Mode: grove.ModeExec, Hash: grove.Hash{3}},
		{Name: "link", Mode: grove.ModeSymlink, Hash: grove.Hash{4}},
	}}

	enc, err := EncodeTree(tree)
	if err != nil {
		t.Fatal(err)
	}

	h := grove.Hash{0x77}
	got, err := DecodeTree(h, iotest.OneByteReader(bytes.NewReader(enc)))
	if err != nil {
		t.Fatal(err)
	}
	if got.Hash != h {
		t.Errorf("got hash %s, want %s", got.Hash, h)
	}
	if diff := cmp.Diff(tree.Entries, got.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTreeInvalid(t *testing.T) {
	cases := []struct {
		name  string
		entry grove.TreeEntry
	}{
		{name: "bad mode", entry: grove.TreeEntry{Name: "x", Mode: "100645"}},
		{name: "empty name", entry: grove.TreeEntry{Name: "", Mode: grove.ModeFile}},
		{name: "NUL in name", entry: grove.TreeEntry{Name: "a\x00b", Mode: grove.ModeFile}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := EncodeTree(&grove.Tree{Entries: []grove.TreeEntry{c.entry}})
			if err == nil {
				t.Error("no error for invalid entry")
			}
		})
	}
}

func TestDecodeTreeCorrupt(t *testing.T) {
	frame := func(body string) string {
		return "tree " + strconv.Itoa(len(body)) + "\x00" + body
	}
	cases := []struct {
		name string
		data string
	}{
		{name: "no mode separator", data: frame("100644")},
		{name: "bad mode", data: frame("999999 x\x00" + strings.Repeat("h", 20))},
		{name: "unterminated name", data: frame("100644 noterm")},
		{name: "empty name", data: frame("100644 \x00" + strings.Repeat("h", 20))},
		{name: "short hash", data: frame("100644 x\x00shorty")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeTreeBytes(grove.Zero, []byte(c.data))
			var ce *grove.CorruptError
			if !errors.As(err, &ce) {
				t.Fatalf("got %v, want CorruptError", err)
			}
		})
	}
}

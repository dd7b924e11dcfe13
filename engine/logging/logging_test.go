package logging

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/grovefs/grove/engine/mem"
	"github.com/grovefs/grove/testutil"
)

func TestEngine(t *testing.T) {
	log.SetOutput(new(bytes.Buffer))
	defer log.SetOutput(os.Stderr)

	testutil.Engine(context.Background(), t, New(mem.New()))
}

func TestLogsOperations(t *testing.T) {
	buf := new(bytes.Buffer)
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)

	ctx := context.Background()
	e := New(mem.New())

	if err := e.Put(ctx, []byte{0xab}, []byte("v")); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Get(ctx, []byte{0xab}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "Put ab") || !strings.Contains(out, "Get ab") {
		t.Errorf("log output missing operations:\n%s", out)
	}
}

package mem

import (
	"context"
	"testing"

	"github.com/grovefs/grove/testutil"
)

func TestEngine(t *testing.T) {
	testutil.Engine(context.Background(), t, New())
}

func TestReadWrite(t *testing.T) {
	testutil.ReadWrite(context.Background(), t, New(), []byte("memory-backed object store"))
}

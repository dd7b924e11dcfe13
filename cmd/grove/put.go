package main

import (
	"context"
	"crypto/sha1"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/grovefs/grove/localstore"
)

func (c maincmd) put(ctx context.Context, fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	var (
		r    io.Reader = os.Stdin
		what           = "stdin"
	)
	if rest := fs.Args(); len(rest) > 0 {
		f, err := os.Open(rest[0])
		if err != nil {
			return errors.Wrapf(err, "opening %s", rest[0])
		}
		defer f.Close()
		r, what = f, rest[0]
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "reading %s", what)
	}

	h := localstore.BlobHash(payload)
	sha := sha1.Sum(payload)
	err = c.s.PutBlobWithSHA1(ctx, h, payload, sha)
	if err != nil {
		return errors.Wrap(err, "storing blob")
	}

	fmt.Printf("%s sha1:%x\n", h, sha)
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/grovefs/grove"
)

func (c maincmd) get(ctx context.Context, fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	h, err := hashArg(fs.Args())
	if err != nil {
		return err
	}

	got, err := c.s.Get(ctx, h)
	if err != nil {
		return errors.Wrapf(err, "getting %s", h)
	}
	_, err = os.Stdout.Write(got)
	return errors.Wrap(err, "writing to stdout")
}

func (c maincmd) cat(ctx context.Context, fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	h, err := hashArg(fs.Args())
	if err != nil {
		return err
	}

	blob, err := c.s.GetBlob(ctx, h)
	if err != nil {
		return errors.Wrapf(err, "getting blob %s", h)
	}
	_, err = os.Stdout.Write(blob.Content)
	return errors.Wrap(err, "writing to stdout")
}

func (c maincmd) sha1(ctx context.Context, fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	h, err := hashArg(fs.Args())
	if err != nil {
		return err
	}

	sha, err := c.s.GetSHA1ForBlob(ctx, h)
	if err != nil {
		return errors.Wrapf(err, "getting sha1 attribute for %s", h)
	}
	fmt.Println(sha)
	return nil
}

func hashArg(args []string) (grove.Hash, error) {
	if len(args) == 0 {
		return grove.Zero, errors.New("missing hash argument")
	}
	h, err := grove.HashFromHex(args[0])
	return h, errors.Wrapf(err, "decoding hash %s", args[0])
}

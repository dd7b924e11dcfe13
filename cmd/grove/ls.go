package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"github.com/grovefs/grove"
)

func (c maincmd) ls(ctx context.Context, fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	h, err := hashArg(fs.Args())
	if err != nil {
		return err
	}

	tree, err := c.s.GetTree(ctx, h)
	if err != nil {
		return errors.Wrapf(err, "getting tree %s", h)
	}

	for _, e := range tree.Entries {
		name := e.Name
		if e.Mode.IsDir() {
			name += "/"
		}
		fmt.Printf("%s %s %s\n", e.Mode, e.Hash, name)
	}
	return nil
}

func (c maincmd) keys(ctx context.Context, fs *flag.FlagSet, args []string) error {
	start := fs.String("start", "", "list hashes strictly after this one")
	err := fs.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	startHash := grove.Zero
	if *start != "" {
		startHash, err = grove.HashFromHex(*start)
		if err != nil {
			return errors.Wrap(err, "parsing -start")
		}
	}

	return c.s.Hashes(ctx, startHash, func(h grove.Hash) error {
		fmt.Println(h)
		return nil
	})
}

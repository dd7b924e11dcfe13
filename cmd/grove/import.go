package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/grovefs/grove"
	"github.com/grovefs/grove/localstore"
)

func (c maincmd) doImport(ctx context.Context, fset *flag.FlagSet, args []string) error {
	err := fset.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parsing args")
	}

	args = fset.Args()
	if len(args) == 0 {
		return errors.New("missing directory to import")
	}

	h, err := c.importDir(ctx, args[0])
	if err != nil {
		return errors.Wrapf(err, "importing %s", args[0])
	}

	fmt.Println(h)
	return nil
}

// importDir stores the files under dir as blobs and the directories
// as trees, bottom-up, and returns the hash of dir's tree. Files
// within a directory are stored in parallel; subdirectories are
// walked one at a time to bound the open-file count.
func (c maincmd) importDir(ctx context.Context, dir string) (grove.Hash, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return grove.Zero, errors.Wrapf(err, "reading dir %s", dir)
	}

	var (
		entries []grove.TreeEntry
		files   []fs.DirEntry
	)
	for _, de := range dirents {
		switch {
		case de.IsDir():
			sub, err := c.importDir(ctx, filepath.Join(dir, de.Name()))
			if err != nil {
				return grove.Zero, err
			}
			entries = append(entries, grove.TreeEntry{
				Name: de.Name(),
				Mode: grove.ModeDir,
				Hash: sub,
			})

		case de.Type() == 0 || de.Type() == fs.ModeSymlink:
			files = append(files, de)

		default:
			log.Printf("skipping %s (mode %s)", filepath.Join(dir, de.Name()), de.Type())
		}
	}

	fileEntries := make([]grove.TreeEntry, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, de := range files {
		i, de := i, de
		path := filepath.Join(dir, de.Name())

		g.Go(func() error {
			var (
				payload []byte
				mode    grove.Mode
			)
			if de.Type() == fs.ModeSymlink {
				target, err := os.Readlink(path)
				if err != nil {
					return errors.Wrapf(err, "reading symlink %s", path)
				}
				payload, mode = []byte(target), grove.ModeSymlink
			} else {
				info, err := de.Info()
				if err != nil {
					return errors.Wrapf(err, "statting %s", path)
				}
				mode = grove.ModeFile
				if info.Mode()&0o111 != 0 {
					mode = grove.ModeExec
				}
				payload, err = os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "reading %s", path)
				}
			}

			h := localstore.BlobHash(payload)
			err := c.s.PutBlob(gctx, h, payload)
			if err != nil {
				return errors.Wrapf(err, "storing %s", path)
			}

			fileEntries[i] = grove.TreeEntry{Name: de.Name(), Mode: mode, Hash: h}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return grove.Zero, err
	}

	return c.s.PutTree(ctx, grove.NewTree(append(entries, fileEntries...)))
}

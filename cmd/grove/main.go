// Command grove is a CLI interface to content-addressed local stores.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/bobg/subcmd"

	"github.com/grovefs/grove/engine"
	_ "github.com/grovefs/grove/engine/compress"
	_ "github.com/grovefs/grove/engine/logging"
	_ "github.com/grovefs/grove/engine/lru"
	_ "github.com/grovefs/grove/engine/mem"
	_ "github.com/grovefs/grove/engine/pebble"
	_ "github.com/grovefs/grove/engine/sqlite3"
	"github.com/grovefs/grove/localstore"
)

type maincmd struct {
	s *localstore.Store
}

func main() {
	config := flag.String("config", "groveconf.json", "path to config file")
	flag.Parse()

	if *config == "" {
		log.Fatal("Config value not set")
	}

	var conf map[string]interface{}
	f, err := os.Open(*config)
	if err != nil {
		log.Fatalf("Opening config file %s: %s", *config, err)
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(&conf)
	if err != nil {
		log.Fatalf("Decoding config file %s: %s", *config, err)
	}

	typ, ok := conf["type"].(string)
	if !ok {
		log.Fatalf("Config file %s missing `type` parameter", *config)
	}

	ctx := context.Background()

	eng, err := engine.Create(ctx, typ, conf)
	if err != nil {
		log.Fatalf("Creating %s-type engine: %s", typ, err)
	}

	err = subcmd.Run(ctx, maincmd{s: localstore.New(eng)}, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
}

func (c maincmd) Subcmds() map[string]subcmd.Subcmd {
	return map[string]subcmd.Subcmd{
		"get":    {F: c.get},
		"cat":    {F: c.cat},
		"put":    {F: c.put},
		"ls":     {F: c.ls},
		"keys":   {F: c.keys},
		"import": {F: c.doImport},
		"sha1":   {F: c.sha1},
	}
}

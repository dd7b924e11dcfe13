package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Factory builds an Engine from a configuration map, typically the
// decoded JSON of a config file. Factories read their own parameters
// from the map; decorator engines find their nested engine's config
// under a nested map.
type Factory func(context.Context, map[string]interface{}) (Engine, error)

var registry = make(map[string]Factory)

// Register associates an engine type name with its factory.
// Engine packages call Register from init, so importing a package
// (blank imports included) is what makes its type creatable.
func Register(name string, f Factory) {
	registry[name] = f
}

// Create builds an engine of the registered type named by name,
// passing conf through to the type's factory.
func Create(ctx context.Context, name string, conf map[string]interface{}) (Engine, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown engine type %s (have %s)", name, strings.Join(registered(), ", "))
	}
	return f(ctx, conf)
}

func registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
)

// Load reads a NestedText configuration file. An empty path yields a
// configuration holding nothing but the tracing defaults.
func Load(path string) (schuko.Configuration, error) {
	k := koanf.New(".")
	conf := koanfadapter.New(k, "", nil)
	conf.InitDefaults()
	if path == "" {
		return conf, nil
	}
	if err := k.Load(file.Provider(path), koanfadapter.Parser()); err != nil {
		return nil, fmt.Errorf("loading configuration %q: %w", path, err)
	}
	tracer().Infof("loaded configuration from %s", path)
	return conf, nil
}

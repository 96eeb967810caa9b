package main

import (
	"errors"
	"io"
	"os"

	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"
)

const ErrInvalidConfig errorkit.Error = "invalid configuration"

const defaultStorePath = "ordsort.db"

// Config holds the defaults that the command line flags can override.
type Config struct {
	Store   string   `yaml:"store"`
	Keys    []string `yaml:"keys"`
	Reverse bool     `yaml:"reverse"`
	Nulls   string   `yaml:"nulls"`
}

func defaultConfig() Config {
	return Config{
		Store: defaultStorePath,
		Keys:  []string{keyNatural},
		Nulls: nullsLast,
	}
}

// loadConfig reads the YAML file at path over the defaults.
// An empty path yields the defaults.
func loadConfig(path string) (cfg Config, rErr error) {
	cfg = defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer errorkit.Finish(&rErr, f.Close)

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, ErrInvalidConfig.Wrap(err)
	}
	if cfg.Store == "" {
		cfg.Store = defaultStorePath
	}
	if len(cfg.Keys) == 0 {
		cfg.Keys = []string{keyNatural}
	}
	if err := checkNulls(cfg.Nulls); err != nil {
		return cfg, ErrInvalidConfig.Wrap(err)
	}
	return cfg, nil
}

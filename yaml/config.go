// Package yaml loads goose configuration files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/goose"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the config file at path and applies it over the defaults.
func LoadConfig(path string) (*goose.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, goose.Errorf(goose.ENOTFOUND, "config file %q not found", path)
		}
		return nil, err
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes YAML from r over the defaults returned by
// goose.NewConfig. Unknown keys are rejected. Lists in the document replace
// the default lists rather than extending them.
func ParseConfig(r io.Reader) (*goose.Config, error) {
	cfg := goose.NewConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, goose.Errorf(goose.EINVALID, "invalid config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

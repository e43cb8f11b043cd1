// Package config loads nzgen's optional project configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the file nzgen looks for in a target directory when no
// --config flag is given.
const DefaultPath = ".nzgen.yaml"

// Config controls generation for a target directory. All fields are
// optional; the zero value plus Defaults() is a working configuration.
type Config struct {
	// Output is the generated file name, relative to the target package
	// directory.
	Output string `yaml:"output"`

	// Manifest is the path of a CUE manifest to generate from, relative
	// to the directory the config was loaded from.
	Manifest string `yaml:"manifest"`

	// Header is an extra comment line placed under the generated-code
	// marker, e.g. a license pointer.
	Header string `yaml:"header"`
}

// Defaults fills unset fields in place and returns the config.
func (c *Config) Defaults() *Config {
	if c.Output == "" {
		c.Output = "nz_generated.go"
	}
	return c
}

// Load reads a config file. When the path was not explicitly requested
// (the per-directory default), a missing file is not an error; it yields
// the default configuration. An explicitly named file must exist, so a
// typo in --config fails loudly instead of silently using defaults.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return (&Config{}).Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if !strings.HasSuffix(cfg.Output, ".go") && cfg.Output != "" {
		return nil, fmt.Errorf("config %s: output %q must be a .go file", path, cfg.Output)
	}

	return cfg.Defaults(), nil
}

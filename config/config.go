// Package config loads the optional YAML configuration of the generator.
//
//	target: go
//	package: icons
//	header: true
//	banner:
//	  upstream: hass-hue-icons
//	  url: https://github.com/arallsopp/hass-hue-icons
//	  notice: "These icons are licensed under Creative Commons:"
//	  license: CC BY-NC-SA 4.0
//	  license_url: http://creativecommons.org/licenses/by-nc-sa/4.0/
package config

import (
	"io"
	"os"

	"github.com/bifrost-tools/hueicons/codegen"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Target  codegen.Target `yaml:"target"`
	Package string         `yaml:"package"`
	Header  bool           `yaml:"header"`
	Banner  codegen.Banner `yaml:"banner"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Target:  codegen.Rust,
		Package: codegen.DefaultPackage,
		Banner:  codegen.DefaultBanner,
	}
}

// Load reads the configuration file at path on top of the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", path)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults. Unknown fields are
// rejected and an empty document yields the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WithStack(err)
	}

	if _, err := codegen.ParseTarget(string(cfg.Target)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CodeGenOptions returns the codegen options described by cfg.
func (cfg *Config) CodeGenOptions() []codegen.CodeGenOption {
	opts := []codegen.CodeGenOption{
		codegen.WithTarget(cfg.Target),
		codegen.WithPackage(cfg.Package),
	}
	if cfg.Header {
		opts = append(opts, codegen.WithHeader(cfg.Banner))
	}
	return opts
}

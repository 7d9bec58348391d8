package main

import (
	"errors"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/sot-tech/prand/pkg/conf"
	"github.com/sot-tech/prand/pkg/randseed"
	"github.com/sot-tech/prand/prng"
)

// Config represents the configuration used for a Runner start.
type Config struct {
	MetricsAddr string         `yaml:"metrics_addr"`
	Generator   conf.MapConfig `yaml:"generator"`
	Output      conf.MapConfig `yaml:"output"`
}

// generatorConfig selects and seeds the random source.
type generatorConfig struct {
	// Tag of the generator type to construct, one of the tags known
	// to the default registry. Ignored if State is set.
	Tag string `cfg:"tag"`
	// Seed is the scalar to derive the state from. Hex strings
	// ("0x...") are accepted. When nil and SeedString is empty, a
	// crypto/rand seed is drawn.
	Seed *uint64 `cfg:"seed"`
	// SeedString is an arbitrary string reduced to a seed scalar
	// with xxhash.
	SeedString string `cfg:"seed_string"`
	// State is a serialized generator string to resume from,
	// taking precedence over Tag and seeding.
	State string `cfg:"state"`
	// Reversed wraps the generator to emit its stream backwards.
	// Only invertible generator types can be reversed.
	Reversed bool `cfg:"reversed"`
}

// outputConfig describes what to emit and how much.
type outputConfig struct {
	// Mode is one of "words", "floats", "ulid", "deal".
	Mode string `cfg:"mode"`
	// Count of outputs to produce; 0 streams until interrupted.
	Count uint64 `cfg:"count"`
	// Items to deal in "deal" mode.
	Items []string `cfg:"items"`
	// PrintState logs the serialized final generator state on exit,
	// suitable for a later resume.
	PrintState bool `cfg:"print_state"`
}

// QuickConfig is the simple configuration for quick start without a
// config file: a randomly seeded xoshiro256** emitting words until
// interrupted.
var QuickConfig = &Config{
	Generator: conf.MapConfig{},
	Output:    conf.MapConfig{},
}

// ParseConfigFile returns a new Config given the path to a YAML
// configuration file.
//
// It supports relative and absolute paths and environment variables.
func ParseConfigFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("no config path specified")
	}

	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfgFile := new(Config)
	err = yaml.NewDecoder(f).Decode(cfgFile)
	return cfgFile, err
}

// buildGenerator constructs the random source a generatorConfig
// describes: resumed from a serialized state, or a fresh registry
// clone seeded from the configured scalar, the hashed seed string or
// the crypto/rand fallback.
func buildGenerator(c generatorConfig) (prng.Generator, error) {
	if c.State != "" {
		return prng.Deserialize(c.State)
	}

	tag := c.Tag
	if tag == "" {
		tag = prng.TagXoshiro256
	}
	g, err := prng.Default().New(tag)
	if err != nil {
		return nil, err
	}

	switch {
	case c.Seed != nil:
		g.Seed(*c.Seed)
	case c.SeedString != "":
		g.Seed(xxhash.Sum64String(c.SeedString))
	default:
		g.Seed(randseed.GenSeed())
	}

	if c.Reversed {
		return prng.NewReversing(g)
	}
	return g, nil
}

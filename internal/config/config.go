// Package config loads run configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the top-level run configuration.
type Config struct {
	// Target selects the subtree to run. Empty means the whole tree.
	Target string `yaml:"target"`
	// Search enumerates paths instead of executing tests.
	Search    bool            `yaml:"search"`
	Engine    EngineConfig    `yaml:"engine"`
	Transport TransportConfig `yaml:"transport"`
}

// EngineConfig tunes the walker and report buffers. Zero values keep
// the library defaults.
type EngineConfig struct {
	RootTag        string `yaml:"root_tag"`
	MaxDepth       int    `yaml:"max_depth"`
	PathCapacity   int    `yaml:"path_capacity"`
	ReportCapacity int    `yaml:"report_capacity"`
}

// TransportConfig selects the report sink. Options are kind-specific
// and decoded on demand.
type TransportConfig struct {
	Kind    string         `yaml:"kind"`
	Options map[string]any `yaml:"options"`
}

// RedisOptions configures the redis publisher transport.
type RedisOptions struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// FileOptions configures the file writer transport.
type FileOptions struct {
	Path string `mapstructure:"path"`
}

// Default returns the configuration used when no file is given: run
// the whole tree and write the report to stdout.
func Default() *Config {
	return &Config{Transport: TransportConfig{Kind: "stdout"}}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration bytes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the YAML schema cannot
// express.
func (c *Config) Validate() error {
	switch c.Transport.Kind {
	case "", "stdout", "memory", "file", "redis":
	default:
		return fmt.Errorf("unknown transport kind %q", c.Transport.Kind)
	}
	if c.Engine.MaxDepth < 0 {
		return fmt.Errorf("engine.max_depth must not be negative")
	}
	if c.Engine.PathCapacity < 0 || c.Engine.ReportCapacity < 0 {
		return fmt.Errorf("engine buffer capacities must not be negative")
	}
	return nil
}

// Redis decodes the transport options as redis publisher settings.
func (c *TransportConfig) Redis() (*RedisOptions, error) {
	opts := &RedisOptions{Address: "localhost:6379"}
	if err := mapstructure.Decode(c.Options, opts); err != nil {
		return nil, fmt.Errorf("decoding redis transport options: %w", err)
	}
	if opts.Address == "" {
		return nil, fmt.Errorf("redis transport requires an address")
	}
	return opts, nil
}

// File decodes the transport options as file writer settings.
func (c *TransportConfig) File() (*FileOptions, error) {
	opts := &FileOptions{}
	if err := mapstructure.Decode(c.Options, opts); err != nil {
		return nil, fmt.Errorf("decoding file transport options: %w", err)
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("file transport requires a path")
	}
	return opts, nil
}

package check

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one property-check run.
type Config struct {
	// Epsilon is the tolerance for approximate comparisons.
	Epsilon float64 `yaml:"epsilon"`
	// Samples is the number of random cases drawn per property.
	Samples int `yaml:"samples"`
	// Seed makes sampling reproducible; equal seeds yield equal digests.
	Seed uint64 `yaml:"seed"`
	// Workers bounds how many properties run at once; 0 means one per property.
	Workers int `yaml:"workers"`
	// Properties restricts the run to the named properties; empty runs all.
	Properties []string `yaml:"properties,omitempty"`
	LogLevel   string   `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Epsilon:  1e-9,
		Samples:  1000,
		Seed:     1,
		Workers:  4,
		LogLevel: "info",
	}
}

// LoadYAML reads a configuration on top of DefaultConfig. Keys missing from
// the document keep their default values.
func LoadYAML(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration from path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return LoadYAML(f)
}

// Validate checks value ranges and that every selected property exists.
func (c Config) Validate() error {
	if !(c.Epsilon > 0 && c.Epsilon < 1) {
		return fmt.Errorf("%w: epsilon must be in (0, 1), got %v", ErrInvalidConfig, c.Epsilon)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := Select(c.Properties); err != nil {
		return err
	}
	return nil
}

// SaveFile writes c to path as YAML.
func (c Config) SaveFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

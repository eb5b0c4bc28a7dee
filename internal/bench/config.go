package bench

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Available insertion patterns.
const (
	// PatternAppend inserts every item after the last one.
	PatternAppend = "append"
	// PatternPrepend inserts every item before the first one.
	PatternPrepend = "prepend"
	// PatternRandom inserts after a uniformly chosen member.
	PatternRandom = "random"
	// PatternDensest always inserts after the same mark, keeping the
	// insertion point maximally dense.
	PatternDensest = "densest"
)

// Config holds the benchmark workloads.
type Config struct {
	Seed      uint64     `toml:"seed"`
	Workloads []Workload `toml:"workload"`
}

// Workload describes one insertion workload.
type Workload struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
	Inserts int    `toml:"inserts"`
}

// DefaultConfig returns the built-in workloads.
func DefaultConfig() Config {
	return Config{
		Seed: 1,
		Workloads: []Workload{
			{Name: "append", Pattern: PatternAppend, Inserts: 100000},
			{Name: "prepend", Pattern: PatternPrepend, Inserts: 100000},
			{Name: "random", Pattern: PatternRandom, Inserts: 100000},
			{Name: "densest", Pattern: PatternDensest, Inserts: 100000},
		},
	}
}

// LoadConfig reads and validates workloads from a TOML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("bench: decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for unusable workloads.
func (c Config) Validate() error {
	if len(c.Workloads) == 0 {
		return errors.New("bench: no workloads configured")
	}

	seen := make(map[string]bool, len(c.Workloads))

	for _, w := range c.Workloads {
		if w.Name == "" {
			return errors.New("bench: workload name must not be empty")
		}

		if seen[w.Name] {
			return fmt.Errorf("bench: duplicate workload name '%s'", w.Name)
		}
		seen[w.Name] = true

		switch w.Pattern {
		case PatternAppend, PatternPrepend, PatternRandom, PatternDensest:
		default:
			return fmt.Errorf("bench: unknown pattern '%s' in workload '%s'", w.Pattern, w.Name)
		}

		if w.Inserts <= 0 {
			return fmt.Errorf("bench: workload '%s' must insert at least one item", w.Name)
		}
	}

	return nil
}

package main

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/TomTonic/rnd/seed"
)

// config controls which engine the demo drives and how it is seeded.
type config struct {
	Engine  string `env:"RND_ENGINE"  envDefault:"romuduojr"`
	Seed    string `env:"RND_SEED"`
	Samples int    `env:"RND_SAMPLES" envDefault:"5"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Samples < 1 {
		return config{}, fmt.Errorf("RND_SAMPLES must be positive, got %d", cfg.Samples)
	}
	if _, ok := runners[cfg.Engine]; !ok {
		return config{}, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
	return cfg, nil
}

// seedValue turns RND_SEED into a 64-bit seed: numbers are used as they are,
// any other text is hashed, and an empty value draws from every entropy source.
func (c config) seedValue() uint64 {
	if c.Seed == "" {
		return seed.FromAll()
	}
	if v, err := strconv.ParseUint(c.Seed, 0, 64); err == nil {
		return v
	}
	return seed.FromText(c.Seed)
}

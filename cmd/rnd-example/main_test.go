package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"RND_ENGINE", "RND_SAMPLES", "RND_SEED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "romuduojr", cfg.Engine)
	assert.Equal(t, 5, cfg.Samples)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("RND_ENGINE", "mersenne")
	_, err := loadConfig()
	assert.Error(t, err)

	t.Setenv("RND_ENGINE", "pcg32")
	t.Setenv("RND_SAMPLES", "0")
	_, err = loadConfig()
	assert.Error(t, err)

	t.Setenv("RND_SAMPLES", "many")
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestSeedValue(t *testing.T) {
	assert.Equal(t, uint64(42), config{Seed: "42"}.seedValue())
	assert.Equal(t, uint64(0xff), config{Seed: "0xff"}.seedValue())
	assert.Equal(t, config{Seed: "level-1"}.seedValue(), config{Seed: "level-1"}.seedValue())
	assert.NotEqual(t, config{Seed: "level-1"}.seedValue(), config{Seed: "level-2"}.seedValue())
}

func TestRunEveryEngine(t *testing.T) {
	for name, run := range runners {
		t.Run(name, func(t *testing.T) {
			var a, b bytes.Buffer
			run(&a, 7, 3)
			run(&b, 7, 3)
			assert.Equal(t, a.String(), b.String(), "same seed must print the same report")
			out := a.String()
			assert.Equal(t, 3, strings.Count(out, "sample "))
			assert.Contains(t, out, "discard(1000) matches 1000 draws: true")
			assert.Contains(t, out, "within 5%: true")
		})
	}
}

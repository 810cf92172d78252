package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Run("overlays values from environment", func(t *testing.T) {
		t.Setenv("CREDVAULT_DATABASE_PATH", "env.db")
		t.Setenv("CREDVAULT_SEED_DEMO", "true")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "env.db", cfg.DatabasePath)
		assert.True(t, cfg.SeedDemo)
	})

	t.Run("seed accepts numeric form", func(t *testing.T) {
		t.Setenv("CREDVAULT_SEED_DEMO", "1")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.True(t, cfg.SeedDemo)
	})

	t.Run("unset variables keep defaults", func(t *testing.T) {
		t.Setenv("CREDVAULT_DATABASE_PATH", "")
		t.Setenv("CREDVAULT_SEED_DEMO", "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "vault.db", cfg.DatabasePath)
		assert.False(t, cfg.SeedDemo)
	})
}

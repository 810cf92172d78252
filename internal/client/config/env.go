package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first when present;
// already-set variables are never overridden by the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CREDVAULT_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("CREDVAULT_SEED_DEMO"); v == "true" || v == "1" {
		cfg.SeedDemo = true
	}
}

package config

// Config holds runtime settings for the CredVault CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite vault file.
//   - SeedDemo: seed the standard development accounts into an empty store.
type Config struct {
	DatabasePath string
	SeedDemo     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "vault.db"
	c.SeedDemo = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"flag"
	"os"

	"github.com/vitahealth/credvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local vault database (default from Config)
//	-s          seed demo accounts into an empty store
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local vault database")
	fs.BoolVar(&cfg.SeedDemo, "s", cfg.SeedDemo, "seed demo accounts into an empty store")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package config

import (
	"encoding/json"
	"os"

	"github.com/vitahealth/credvault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath *string `json:"database_path"`
	SeedDemo     *bool   `json:"seed_demo"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via
// flagx.JsonConfigFlags); when neither is set, nothing is loaded. Fields
// absent from the file keep their current values. Read or unmarshal errors
// panic, since a config file that was explicitly requested but cannot be
// used leaves nothing sensible to run with.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SeedDemo != nil {
		cfg.SeedDemo = *jc.SeedDemo
	}
}

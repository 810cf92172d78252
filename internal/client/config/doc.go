// Package config loads runtime configuration for the CredVault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally loaded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the local vault database
//	-s          seed demo accounts into an empty store
//
// Supported environment variables
//
//	CREDVAULT_DATABASE_PATH
//	CREDVAULT_SEED_DEMO ("true"/"1")
//
// # JSON schema
//
//	{
//	  "database_path": "vault.db",
//	  "seed_demo": false
//	}
package config

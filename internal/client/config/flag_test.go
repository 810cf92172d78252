package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{name: "database path and seed", args: []string{"cmd", "-d", "/tmp/vault.db", "-s"},
			expected: &Config{DatabasePath: "/tmp/vault.db", SeedDemo: true}},
		{name: "database path only", args: []string{"cmd", "-d", "other.db"},
			expected: &Config{DatabasePath: "other.db"}},
		{name: "no flags keeps current values", args: []string{"cmd"},
			expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://127.0.0.1:8080", "-t", "5", "-d", "/tmp/x.db", "-m", "remote", "-l", "debug"},
			expected: &Config{
				APIBaseURL:     "http://127.0.0.1:8080",
				RequestTimeout: 5 * time.Second,
				DBPath:         "/tmp/x.db",
				CRUDMode:       "remote",
				LogLevel:       "debug",
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"cmd", "-c", "cfg.json", "-x", "1", "-t", "7"},
			expected: &Config{RequestTimeout: 7 * time.Second},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":            "http://www.example:9000",
		"request_timeout":         "4s",
		"login_delay":             0,
		"session_ttl":             "1h",
		"token_secret":            "k",
		"crud_mode":               "remote",
		"id_policy":               "length_plus_one",
		"max_concurrent_requests": 2,
		"notification_life":       "5s",
		"log_backend":             "zap",
		"otlp_endpoint":           "localhost:4317",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://www.example:9000", cfg.APIBaseURL)
		assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
		assert.Equal(t, time.Duration(0), cfg.LoginDelay)
		assert.Equal(t, time.Hour, cfg.SessionTTL)
		assert.Equal(t, "k", cfg.TokenSecret)
		assert.Equal(t, CRUDModeRemote, cfg.CRUDMode)
		assert.Equal(t, IDPolicyLengthPlusOne, cfg.IDPolicy)
		assert.Equal(t, 2, cfg.MaxConcurrentRequests)
		assert.Equal(t, 5*time.Second, cfg.NotificationLife)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "bod.db", cfg.DBPath)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			APIBaseURL:     "http://defaults:1234",
			RequestTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

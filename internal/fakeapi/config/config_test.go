package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:8080", c.EndpointAddr)
	assert.Equal(t, "slog-json", c.LogBackend)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.OTLPEndpoint)
}

func TestLoadConfig_JsonThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "fakeapi.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr":":9000","log_level":"debug"}`), 0o600))

	os.Args = []string{"fakeapi", "-c", path, "-a", ":9100"}
	cfg := LoadConfig()

	want := &Config{EndpointAddr: ":9100", LogBackend: "slog-json", LogLevel: "debug"}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFlags_BadFlagPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// -a with no value
	os.Args = []string{"fakeapi", "-a"}
	require.Panics(t, func() { parseFlags(&Config{}) })
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://jsonplaceholder.typicode.com", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "bod.db", c.DBPath)
	assert.Equal(t, time.Second, c.LoginDelay)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Empty(t, c.TokenSecret)
	assert.Equal(t, CRUDModeLocal, c.CRUDMode)
	assert.Equal(t, IDPolicyMonotonic, c.IDPolicy)
	assert.Equal(t, 0, c.MaxConcurrentRequests)
	assert.Equal(t, 3*time.Second, c.NotificationLife)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Empty(t, c.OTLPEndpoint)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "remote mode", mutate: func(c *Config) { c.CRUDMode = CRUDModeRemote }, ok: true},
		{name: "legacy ids", mutate: func(c *Config) { c.IDPolicy = IDPolicyLengthPlusOne }, ok: true},
		{name: "bad mode", mutate: func(c *Config) { c.CRUDMode = "sync" }},
		{name: "bad policy", mutate: func(c *Config) { c.IDPolicy = "random" }},
		{name: "empty url", mutate: func(c *Config) { c.APIBaseURL = "" }},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }},
		{name: "negative limit", mutate: func(c *Config) { c.MaxConcurrentRequests = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, common.ErrorValidation)
			}
		})
	}
}

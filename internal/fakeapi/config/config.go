// Package config handles configuration for the fake API server,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the fake API server.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP listener.
//   - LogBackend / LogLevel: logger selection.
//   - OTLPEndpoint: OTLP/gRPC collector; empty disables tracing.
type Config struct {
	EndpointAddr string
	LogBackend   string
	LogLevel     string
	OTLPEndpoint string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = "127.0.0.1:8080"
	c.LogBackend = "slog-json"
	c.LogLevel = "info"
	c.OTLPEndpoint = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bod/internal/flagx"
)

// JsonConfig mirrors Config for JSON files.
type JsonConfig struct {
	EndpointAddr string `json:"endpoint_addr"`
	LogBackend   string `json:"log_backend"`
	LogLevel     string `json:"log_level"`
	OTLPEndpoint string `json:"otlp_endpoint"`
}

// parseJson overlays config with the file named by -c or -config. Keys
// absent from the file keep their current values. Panics on read or
// unmarshal errors.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{
		EndpointAddr: config.EndpointAddr,
		LogBackend:   config.LogBackend,
		LogLevel:     config.LogLevel,
		OTLPEndpoint: config.OTLPEndpoint,
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.LogBackend = c.LogBackend
	config.LogLevel = c.LogLevel
	config.OTLPEndpoint = c.OTLPEndpoint
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/bod/internal/flagx"
	"github.com/dmitrijs2005/bod/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL            string         `json:"api_base_url"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
	DBPath                string         `json:"db_path"`
	LoginDelay            timex.Duration `json:"login_delay"`
	SessionTTL            timex.Duration `json:"session_ttl"`
	TokenSecret           string         `json:"token_secret"`
	CRUDMode              string         `json:"crud_mode"`
	IDPolicy              string         `json:"id_policy"`
	MaxConcurrentRequests int            `json:"max_concurrent_requests"`
	NotificationLife      timex.Duration `json:"notification_life"`
	LogBackend            string         `json:"log_backend"`
	LogLevel              string         `json:"log_level"`
	OTLPEndpoint          string         `json:"otlp_endpoint"`
}

func toJson(cfg *Config) JsonConfig {
	return JsonConfig{
		APIBaseURL:            cfg.APIBaseURL,
		RequestTimeout:        timex.Duration{Duration: cfg.RequestTimeout},
		DBPath:                cfg.DBPath,
		LoginDelay:            timex.Duration{Duration: cfg.LoginDelay},
		SessionTTL:            timex.Duration{Duration: cfg.SessionTTL},
		TokenSecret:           cfg.TokenSecret,
		CRUDMode:              cfg.CRUDMode,
		IDPolicy:              cfg.IDPolicy,
		MaxConcurrentRequests: cfg.MaxConcurrentRequests,
		NotificationLife:      timex.Duration{Duration: cfg.NotificationLife},
		LogBackend:            cfg.LogBackend,
		LogLevel:              cfg.LogLevel,
		OTLPEndpoint:          cfg.OTLPEndpoint,
	}
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.ConfigFile.
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - The DTO is pre-filled from cfg, so keys absent from the file keep
//     their current values.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	jc := toJson(cfg)

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.APIBaseURL = jc.APIBaseURL
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.DBPath = jc.DBPath
	cfg.LoginDelay = time.Duration(jc.LoginDelay.Duration)
	cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	cfg.TokenSecret = jc.TokenSecret
	cfg.CRUDMode = jc.CRUDMode
	cfg.IDPolicy = jc.IDPolicy
	cfg.MaxConcurrentRequests = jc.MaxConcurrentRequests
	cfg.NotificationLife = time.Duration(jc.NotificationLife.Duration)
	cfg.LogBackend = jc.LogBackend
	cfg.LogLevel = jc.LogLevel
	cfg.OTLPEndpoint = jc.OTLPEndpoint
}

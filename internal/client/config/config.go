package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/bod/internal/common"
)

// CRUD modes.
const (
	CRUDModeLocal  = "local"
	CRUDModeRemote = "remote"
)

// Id policies.
const (
	IDPolicyMonotonic     = "monotonic"
	IDPolicyLengthPlusOne = "length_plus_one"
)

// Config holds runtime settings for the console.
//
// Fields:
//   - APIBaseURL: root of the demo REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DBPath: local SQLite file holding the persisted session.
//   - LoginDelay: artificial latency of a login attempt; 0 disables it.
//   - SessionTTL: lifetime of an issued token.
//   - TokenSecret: HS256 key for tokens; empty means unsigned tokens.
//   - CRUDMode: "local" mirrors edits in-process only, "remote" writes through the API.
//   - IDPolicy: "monotonic" or "length_plus_one" id assignment for local creates.
//   - MaxConcurrentRequests: cap on parallel fetches; 0 means unlimited.
//   - NotificationLife: how long a notification stays active.
//   - LogBackend / LogLevel: logger selection (slog, slog-json, zap, zap-dev).
//   - OTLPEndpoint: OTLP/gRPC collector; empty disables tracing.
type Config struct {
	APIBaseURL            string
	RequestTimeout        time.Duration
	DBPath                string
	LoginDelay            time.Duration
	SessionTTL            time.Duration
	TokenSecret           string
	CRUDMode              string
	IDPolicy              string
	MaxConcurrentRequests int
	NotificationLife      time.Duration
	LogBackend            string
	LogLevel              string
	OTLPEndpoint          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://jsonplaceholder.typicode.com"
	c.RequestTimeout = 10 * time.Second
	c.DBPath = "bod.db"
	c.LoginDelay = 1 * time.Second
	c.SessionTTL = 24 * time.Hour
	c.TokenSecret = ""
	c.CRUDMode = CRUDModeLocal
	c.IDPolicy = IDPolicyMonotonic
	c.MaxConcurrentRequests = 0
	c.NotificationLife = 3 * time.Second
	c.LogBackend = "slog"
	c.LogLevel = "warn"
	c.OTLPEndpoint = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate rejects values the console cannot act on.
func (c *Config) Validate() error {
	switch c.CRUDMode {
	case CRUDModeLocal, CRUDModeRemote:
	default:
		return fmt.Errorf("%w: crud_mode %q", common.ErrorValidation, c.CRUDMode)
	}
	switch c.IDPolicy {
	case IDPolicyMonotonic, IDPolicyLengthPlusOne:
	default:
		return fmt.Errorf("%w: id_policy %q", common.ErrorValidation, c.IDPolicy)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("%w: api_base_url is empty", common.ErrorValidation)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request_timeout must be positive", common.ErrorValidation)
	}
	if c.MaxConcurrentRequests < 0 {
		return fmt.Errorf("%w: max_concurrent_requests must not be negative", common.ErrorValidation)
	}
	return nil
}

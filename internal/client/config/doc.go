// Package config loads runtime configuration for the console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the demo API
//	-t int      request timeout (seconds)
//	-d string   local database file
//	-m string   crud mode (local|remote)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds. Keys missing from the file keep
// their default:
//
//	{
//	  "api_base_url": "https://jsonplaceholder.typicode.com",
//	  "request_timeout": "10s",
//	  "db_path": "bod.db",
//	  "login_delay": "1s",
//	  "session_ttl": "24h",
//	  "token_secret": "",
//	  "crud_mode": "local",
//	  "id_policy": "monotonic",
//	  "max_concurrent_requests": 0,
//	  "notification_life": "3s",
//	  "log_backend": "slog",
//	  "log_level": "warn",
//	  "otlp_endpoint": ""
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config

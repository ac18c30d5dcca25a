package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/bod/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address (e.g., "127.0.0.1:8080")
//	-l string   log level
//	-o string   OTLP/gRPC collector endpoint
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.OTLPEndpoint, "o", config.OTLPEndpoint, "OTLP collector endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog     = "slog"
	BackendSlogJSON = "slog-json"
	BackendZap      = "zap"
	BackendZapDev   = "zap-dev"
)

// New builds a Logger for the named backend writing at or above level
// ("debug", "info", "warn", "error"). The zap backends always write to
// stderr; the slog backends write to w.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(backend) {
	case "", BackendSlog:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))), nil
	case BackendSlogJSON:
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))), nil
	case BackendZap, BackendZapDev:
		cfg := zap.NewProductionConfig()
		if backend == BackendZapDev {
			cfg = zap.NewDevelopmentConfig()
		}
		cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
		cfg.OutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		return NewZapLogger(l), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

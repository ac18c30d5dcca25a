// Package fakeapi is an in-memory REST API compatible with the public demo
// API the console talks to. It serves deterministic seed data and keeps
// writes for the lifetime of the process, which makes it usable both as a
// local development backend and inside tests.
package fakeapi

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bod/internal/fakeapi/config"
	"github.com/dmitrijs2005/bod/internal/logging"
	"github.com/dmitrijs2005/bod/internal/telemetry"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *Store
	shutdown telemetry.ShutdownFunc
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	shutdown, err := telemetry.Setup(ctx, "fakeapi", c.OTLPEndpoint, true)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	store, err := NewStore(Seed())
	if err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	return &App{config: c, logger: logger, store: store, shutdown: shutdown}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := NewServer(app.config.EndpointAddr, app.store, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.shutdown(context.Background()); err != nil {
		app.logger.Error(ctx, "telemetry shutdown", "error", err)
	}
}

package fakeapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bod/internal/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server runs the fake API over HTTP.
type Server struct {
	address string
	handler http.Handler
	logger  logging.Logger
}

// NewServer wraps the router for store in an OpenTelemetry handler.
func NewServer(address string, store *Store, l logging.Logger) *Server {
	l = l.With("module", "fakeapi")
	return &Server{
		address: address,
		handler: otelhttp.NewHandler(NewRouter(store, l), "fakeapi"),
		logger:  l,
	}
}

// Handler exposes the full handler chain, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping fake API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting fake API server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

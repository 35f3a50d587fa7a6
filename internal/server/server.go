package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/handler"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/workers"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	workers         *workers.Workers
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer builds the HTTP server for handlers on address. bg may be nil.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, address string, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}
	if address == "" {
		return nil, errEmptyAddress
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), address, cfg, logger),
		workers:         bg,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer serves until ctx is cancelled, a stop signal arrives, the
// listener fails or a worker fails. Stop requests are not errors.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	workersCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	errCh := make(chan error, 2)
	go func() {
		errCh <- s.httpServer.RunServer(ctx)
	}()
	go func() {
		if err := s.workers.Run(workersCtx); err != nil {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop requested")
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}
	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/handler"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// onShutdown hooks run after the transport has stopped accepting
	// requests, so long-lived resources (event hub, workers) can close
	// after the last in-flight request drained.
	onShutdown []func()
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, onShutdown ...func()) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		onShutdown: onShutdown,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	for _, hook := range s.onShutdown {
		hook()
	}
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-spool-sync/internal/adapter"
	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/models"
)

// App is the headless synchronization client: it keeps the local SQLite
// inventory in step with the server for as long as the process runs.
type App struct {
	config   *config.ClientConfig
	adapter  adapter.ServerAdapter
	services *service.ClientServices
	logger   *logger.Logger
}

func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	log := logger.NewClientLogger("client")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter)
	services := service.NewClientServices(storages.SpoolRepository, serverAdapter, cfg.Sync, log)

	return &App{
		config:   cfg,
		adapter:  serverAdapter,
		services: services,
		logger:   log,
	}, nil
}

// Run authenticates against the server, performs an eager first session,
// then hands control to the background agent until a stop signal arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.authenticate(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	// First session runs eagerly so a freshly started device catches up
	// without waiting out the agent's startup delay. Failure here is not
	// fatal: the agent retries on its own schedule.
	if _, err := a.services.SyncService.SyncOnce(ctx); err != nil {
		a.logger.Err(err).Msg("initial sync failed, agent will retry")
	}

	a.services.SyncAgent.Start(ctx)
	defer a.services.SyncAgent.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("client shutting down")

	return nil
}

// authenticate logs in with the credentials from the environment, falling
// back to registration when the account does not exist yet.
func (a *App) authenticate(ctx context.Context) error {
	user := models.User{
		Login:    os.Getenv("SPOOLSYNC_LOGIN"),
		Password: os.Getenv("SPOOLSYNC_PASSWORD"),
	}

	_, err := a.adapter.Login(ctx, user)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrNotFound) && !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	a.logger.Info().Str("login", user.Login).Msg("account not found, registering")
	if _, err = a.adapter.Register(ctx, user); err != nil {
		return err
	}

	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	UserRepository      UserRepository
	SpoolRepository     SpoolRepository
	TombstoneRepository TombstoneRepository
}

// NewStorages initialises the server storage layer: it opens the PostgreSQL
// connection from cfg, runs pending goose migrations, and wires all
// repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		SpoolRepository:     NewSpoolRepository(db, log),
		TombstoneRepository: NewTombstoneRepository(db, log),
	}, nil
}

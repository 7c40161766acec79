package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [LocalSpoolRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// SpoolRepository is the SQLite-backed repository for spool records
	// stored locally on the client device.
	SpoolRepository LocalSpoolRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Bootstraps the local schema on first run.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [LocalSpoolRepository].
//
// Returns an error if the database connection cannot be established or if
// schema bootstrap fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SpoolRepository: NewLocalSpoolRepository(db, logger),
	}, nil
}

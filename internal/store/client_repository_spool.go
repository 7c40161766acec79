package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/models"
)

type localSpoolRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSpoolRepository constructs the SQLite-backed [LocalSpoolRepository]
// used by the client sync agent.
func NewLocalSpoolRepository(db *DB, logger *logger.Logger) LocalSpoolRepository {
	return &localSpoolRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSpoolRepository) ApplyServerSpools(ctx context.Context, spools ...models.Spool) error {
	return l.save(ctx, false, spools...)
}

func (l *localSpoolRepository) SaveLocal(ctx context.Context, spool models.Spool) error {
	return l.save(ctx, true, spool)
}

func (l *localSpoolRepository) save(ctx context.Context, dirty bool, spools ...models.Spool) error {
	log := logger.FromContext(ctx)

	dirtyFlag := 0
	if dirty {
		dirtyFlag = 1
	}

	for _, spool := range spools {
		var legacyID any
		if spool.LegacyID != 0 {
			legacyID = spool.LegacyID
		}

		_, err := l.DB.ExecContext(ctx, upsertLocalSpool,
			spool.Serial,
			spool.OwnerID,
			spool.Visibility,
			spool.Material,
			spool.Color,
			spool.RemainingQuantity,
			legacyID,
			spool.LastUpdated,
			spool.CreatedAt,
			dirtyFlag,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localSpoolRepository.save").
				Str("serial", spool.Serial).
				Bool("dirty", dirty).
				Msg("failed to execute upsert for local spool")
			return fmt.Errorf("failed to save local spool (serial=%s): %w", spool.Serial, err)
		}
	}

	return nil
}

func (l *localSpoolRepository) Get(ctx context.Context, serial string) (models.Spool, error) {
	row := l.DB.QueryRowContext(ctx, getLocalSpool, serial)

	spool, err := scanSpool(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Spool{}, ErrSpoolNotFound
	}
	if err != nil {
		return models.Spool{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return spool, nil
}

func (l *localSpoolRepository) GetAll(ctx context.Context) ([]models.Spool, error) {
	return l.list(ctx, getAllLocalSpools)
}

func (l *localSpoolRepository) DirtySpools(ctx context.Context) ([]models.Spool, error) {
	return l.list(ctx, getDirtyLocalSpools)
}

func (l *localSpoolRepository) list(ctx context.Context, query string) ([]models.Spool, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "localSpoolRepository.list").
			Msg("failed to execute query for listing local spools")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Spool, 0, 50)

	for rows.Next() {
		spool, scanErr := scanSpool(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localSpoolRepository.list").
				Msg("failed to scan local spool row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, spool)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (l *localSpoolRepository) MarkClean(ctx context.Context, serials ...string) error {
	for _, serial := range serials {
		if _, err := l.DB.ExecContext(ctx, markLocalSpoolClean, serial); err != nil {
			return fmt.Errorf("failed to mark local spool clean (serial=%s): %w", serial, err)
		}
	}

	return nil
}

func (l *localSpoolRepository) Delete(ctx context.Context, serial string) error {
	// Unknown serials are fine: the deletion may refer to a record this
	// device never pulled.
	if _, err := l.DB.ExecContext(ctx, deleteLocalSpool, serial); err != nil {
		return fmt.Errorf("failed to delete local spool (serial=%s): %w", serial, err)
	}

	return nil
}

func (l *localSpoolRepository) QueueDeletion(ctx context.Context, id models.Identifier) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, queuePendingDeletion, id.String(), time.Now().UnixMilli()); err != nil {
		log.Err(err).
			Str("func", "localSpoolRepository.QueueDeletion").
			Str("identifier", id.String()).
			Msg("failed to queue pending deletion")
		return fmt.Errorf("failed to queue deletion (identifier=%s): %w", id, err)
	}

	if _, err := l.DB.ExecContext(ctx, deleteLocalSpool, id.String()); err != nil {
		return fmt.Errorf("failed to delete local spool (identifier=%s): %w", id, err)
	}

	return nil
}

func (l *localSpoolRepository) PendingDeletions(ctx context.Context) ([]models.Identifier, error) {
	rows, err := l.DB.QueryContext(ctx, getPendingDeletions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []models.Identifier
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, models.Identifier(raw))
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}

func (l *localSpoolRepository) ClearDeletions(ctx context.Context, ids ...models.Identifier) error {
	for _, id := range ids {
		if _, err := l.DB.ExecContext(ctx, clearPendingDeletion, id.String()); err != nil {
			return fmt.Errorf("failed to clear pending deletion (identifier=%s): %w", id, err)
		}
	}

	return nil
}

func (l *localSpoolRepository) LastSyncTime(ctx context.Context) (int64, error) {
	var t int64
	err := l.DB.QueryRowContext(ctx, getLastSyncTime).Scan(&t)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

func (l *localSpoolRepository) SetLastSyncTime(ctx context.Context, t int64) error {
	if _, err := l.DB.ExecContext(ctx, setLastSyncTime, t); err != nil {
		return fmt.Errorf("failed to persist last sync time: %w", err)
	}

	return nil
}

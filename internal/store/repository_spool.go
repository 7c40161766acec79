package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/models"
)

// spoolRepository is the PostgreSQL-backed implementation of
// [SpoolRepository]. It executes all record operations directly against the
// "spools" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (serial, since, affected rows, etc.).
type spoolRepository struct {
	*DB
	logger *logger.Logger
}

// NewSpoolRepository constructs a [SpoolRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewSpoolRepository(db *DB, logger *logger.Logger) SpoolRepository {
	return &spoolRepository{
		DB:     db,
		logger: logger,
	}
}

// Get implements [SpoolRepository].
func (r *spoolRepository) Get(ctx context.Context, serial string) (models.Spool, error) {
	query, args, err := buildGetSpoolQuery(serial)
	if err != nil {
		return models.Spool{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, query, args...)
}

// GetByLegacyID implements [SpoolRepository].
func (r *spoolRepository) GetByLegacyID(ctx context.Context, legacyID int64) (models.Spool, error) {
	query, args, err := buildGetSpoolByLegacyIDQuery(legacyID)
	if err != nil {
		return models.Spool{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, query, args...)
}

func (r *spoolRepository) getOne(ctx context.Context, query string, args ...any) (models.Spool, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, query, args...)

	spool, err := scanSpool(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Spool{}, ErrSpoolNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "spoolRepository.getOne").
			Msg("failed to scan spool row")
		return models.Spool{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return spool, nil
}

// List implements [SpoolRepository].
func (r *spoolRepository) List(ctx context.Context) ([]models.Spool, error) {
	query, args, err := buildListSpoolsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, query, args...)
}

// ListChangedSince implements [SpoolRepository].
func (r *spoolRepository) ListChangedSince(ctx context.Context, since int64) ([]models.Spool, error) {
	query, args, err := buildListChangedSinceQuery(since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, query, args...)
}

func (r *spoolRepository) list(ctx context.Context, query string, args ...any) ([]models.Spool, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "spoolRepository.list").
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for listing spools")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Spool, 0, 50)

	for rows.Next() {
		spool, scanErr := scanSpool(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "spoolRepository.list").
				Msg("failed to scan spool row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, spool)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "spoolRepository.list").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Save implements [SpoolRepository]. It upserts the whole record
// unconditionally; callers that need the optimistic precondition use
// CompareAndSave instead.
func (r *spoolRepository) Save(ctx context.Context, spool models.Spool) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveSpool, spoolArgs(spool)...)
	if err != nil {
		log.Err(err).
			Str("func", "spoolRepository.Save").
			Str("serial", spool.Serial).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute upsert for spool")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// CompareAndSave implements [SpoolRepository].
//
// expectedLastUpdated == 0 selects the create path: an INSERT that does
// nothing on conflict, so a concurrent create of the same serial surfaces
// as ErrSyncConflict. Any other value selects the update path: an UPDATE
// whose WHERE clause re-checks last_updated, rejecting the write when a
// concurrent session committed in between. Either way the caller re-reads
// and re-resolves on conflict, which keeps the read-decide-write sequence
// linearizable per serial.
func (r *spoolRepository) CompareAndSave(ctx context.Context, spool models.Spool, expectedLastUpdated int64) error {
	log := logger.FromContext(ctx)

	var (
		res sql.Result
		err error
	)

	if expectedLastUpdated == 0 {
		res, err = r.DB.ExecContext(ctx, insertSpoolIfAbsent, spoolArgs(spool)...)
	} else {
		res, err = r.DB.ExecContext(ctx, updateSpoolIfUnchanged,
			spool.Serial,
			spool.OwnerID,
			spool.Visibility,
			spool.Material,
			spool.Color,
			spool.RemainingQuantity,
			spool.LegacyID,
			spool.LastUpdated,
			expectedLastUpdated,
		)
	}
	if err != nil {
		log.Err(err).
			Str("func", "spoolRepository.CompareAndSave").
			Str("serial", spool.Serial).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute conditional write for spool")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().
			Str("func", "spoolRepository.CompareAndSave").
			Str("serial", spool.Serial).
			Int64("expected_last_updated", expectedLastUpdated).
			Msg("optimistic precondition failed")
		return ErrSyncConflict
	}

	return nil
}

// Delete implements [SpoolRepository].
func (r *spoolRepository) Delete(ctx context.Context, serial string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, deleteSpool, serial)
	if err != nil {
		log.Err(err).
			Str("func", "spoolRepository.Delete").
			Str("serial", serial).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute delete for spool")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSpoolNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpool(row rowScanner) (models.Spool, error) {
	var spool models.Spool
	var ownerID sql.NullInt64
	var legacyID sql.NullInt64

	err := row.Scan(
		&spool.Serial,
		&ownerID,
		&spool.Visibility,
		&spool.Material,
		&spool.Color,
		&spool.RemainingQuantity,
		&legacyID,
		&spool.LastUpdated,
		&spool.CreatedAt,
	)
	if err != nil {
		return models.Spool{}, err
	}

	if ownerID.Valid {
		spool.OwnerID = &ownerID.Int64
	}
	if legacyID.Valid {
		spool.LegacyID = legacyID.Int64
	}

	return spool, nil
}

func spoolArgs(spool models.Spool) []any {
	var legacyID any
	if spool.LegacyID != 0 {
		legacyID = spool.LegacyID
	}

	return []any{
		spool.Serial,
		spool.OwnerID,
		spool.Visibility,
		spool.Material,
		spool.Color,
		spool.RemainingQuantity,
		legacyID,
		spool.LastUpdated,
		spool.CreatedAt,
	}
}

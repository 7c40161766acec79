package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/models"
)

// tombstoneRepository is the PostgreSQL-backed implementation of
// [TombstoneRepository]. Each row carries the deletion marker plus a JSON
// recycle copy of the record it replaced, so a restore never depends on the
// active table still holding any trace of the record.
type tombstoneRepository struct {
	*DB
	logger *logger.Logger
}

// NewTombstoneRepository constructs a [TombstoneRepository] backed by the
// provided database connection and logger.
func NewTombstoneRepository(db *DB, logger *logger.Logger) TombstoneRepository {
	return &tombstoneRepository{
		DB:     db,
		logger: logger,
	}
}

// Create implements [TombstoneRepository]. The upsert is idempotent: a
// crash after Create but before the active record is removed leaves the
// record re-deletable, and re-deleting simply refreshes the marker.
func (r *tombstoneRepository) Create(ctx context.Context, tombstone models.Tombstone, recycle models.Spool) error {
	log := logger.FromContext(ctx)

	recycleJSON, err := json.Marshal(recycle)
	if err != nil {
		return fmt.Errorf("error encoding recycle copy for serial %s: %w", tombstone.Serial, err)
	}

	var deletedBy any
	if tombstone.DeletedBy != "" {
		deletedBy = tombstone.DeletedBy
	}

	_, err = r.DB.ExecContext(ctx, createTombstone,
		tombstone.Serial,
		tombstone.DeletedAt,
		deletedBy,
		tombstone.OriginalOwnerID,
		recycleJSON,
	)
	if err != nil {
		log.Err(err).
			Str("func", "tombstoneRepository.Create").
			Str("serial", tombstone.Serial).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute insert for tombstone")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get implements [TombstoneRepository].
func (r *tombstoneRepository) Get(ctx context.Context, serial string) (models.Tombstone, models.Spool, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getTombstone, serial)

	var tombstone models.Tombstone
	var deletedBy sql.NullString
	var ownerID sql.NullInt64
	var recycleJSON []byte

	err := row.Scan(&tombstone.Serial, &tombstone.DeletedAt, &deletedBy, &ownerID, &recycleJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tombstone{}, models.Spool{}, ErrTombstoneNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "tombstoneRepository.Get").
			Str("serial", serial).
			Msg("failed to scan tombstone row")
		return models.Tombstone{}, models.Spool{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if deletedBy.Valid {
		tombstone.DeletedBy = deletedBy.String
	}
	if ownerID.Valid {
		tombstone.OriginalOwnerID = &ownerID.Int64
	}

	var recycle models.Spool
	if err = json.Unmarshal(recycleJSON, &recycle); err != nil {
		log.Err(err).
			Str("func", "tombstoneRepository.Get").
			Str("serial", serial).
			Msg("failed to decode recycle copy")
		return models.Tombstone{}, models.Spool{}, fmt.Errorf("error decoding recycle copy for serial %s: %w", serial, err)
	}

	return tombstone, recycle, nil
}

// List implements [TombstoneRepository].
func (r *tombstoneRepository) List(ctx context.Context) ([]models.Tombstone, error) {
	query, args, err := buildListTombstonesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, query, args...)
}

// ListSince implements [TombstoneRepository].
func (r *tombstoneRepository) ListSince(ctx context.Context, since int64) ([]models.Tombstone, error) {
	query, args, err := buildListTombstonesSinceQuery(since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, query, args...)
}

func (r *tombstoneRepository) list(ctx context.Context, query string, args ...any) ([]models.Tombstone, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "tombstoneRepository.list").
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for listing tombstones")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Tombstone, 0, 16)

	for rows.Next() {
		var tombstone models.Tombstone
		var deletedBy sql.NullString
		var ownerID sql.NullInt64

		scanErr := rows.Scan(&tombstone.Serial, &tombstone.DeletedAt, &deletedBy, &ownerID)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "tombstoneRepository.list").
				Msg("failed to scan tombstone row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if deletedBy.Valid {
			tombstone.DeletedBy = deletedBy.String
		}
		if ownerID.Valid {
			tombstone.OriginalOwnerID = &ownerID.Int64
		}

		results = append(results, tombstone)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "tombstoneRepository.list").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Delete implements [TombstoneRepository].
func (r *tombstoneRepository) Delete(ctx context.Context, serial string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, deleteTombstone, serial)
	if err != nil {
		log.Err(err).
			Str("func", "tombstoneRepository.Delete").
			Str("serial", serial).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute delete for tombstone")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTombstoneNotFound
	}

	return nil
}

// DeleteOlderThan implements [TombstoneRepository].
func (r *tombstoneRepository) DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, deleteExpiredTombstones, cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "tombstoneRepository.DeleteOlderThan").
			Int64("cutoff", cutoff).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute purge for expired tombstones")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

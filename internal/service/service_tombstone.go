package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/models"
)

// tombstoneService is the concrete implementation of TombstoneService.
// It enforces the tombstone-before-delete ordering, keeps a full recycle
// copy of every deleted record for restore, and ages markers out of the
// ledger after the configured retention window.
type tombstoneService struct {
	tombstoneRepository store.TombstoneRepository
	spoolRepository     store.SpoolRepository

	// ttl is the retention window. A marker older than this is purged and
	// deletion propagation for that record is no longer guaranteed.
	ttl time.Duration

	logger *logger.Logger
}

// NewTombstoneService constructs a TombstoneService over the given
// repositories with the retention window taken from cfg.
func NewTombstoneService(tombstones store.TombstoneRepository, spools store.SpoolRepository, cfg config.Sync, logger *logger.Logger) TombstoneService {
	return &tombstoneService{
		tombstoneRepository: tombstones,
		spoolRepository:     spools,
		ttl:                 cfg.TombstoneTTL,
		logger:              logger,
	}
}

// Bury records a deletion marker for the spool and then removes the active
// record. The marker write happens first: if the process dies between the
// two writes the record is still active AND marked deleted, which a later
// delete retries cleanly; the opposite order could lose the deletion.
func (t *tombstoneService) Bury(ctx context.Context, spool models.Spool, deletedBy string) (models.Tombstone, error) {
	log := logger.FromContext(ctx)

	tombstone := models.Tombstone{
		Serial:          spool.Serial,
		DeletedAt:       time.Now().UnixMilli(),
		DeletedBy:       deletedBy,
		OriginalOwnerID: spool.OwnerID,
	}

	recycle := spool
	recycle.Deleted = true

	if err := t.tombstoneRepository.Create(ctx, tombstone, recycle); err != nil {
		log.Err(err).Str("serial", spool.Serial).Msg("tombstone creation failed")
		return models.Tombstone{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := t.spoolRepository.Delete(ctx, spool.Serial); err != nil {
		// Already gone is fine: the marker is durable either way.
		if !errors.Is(err, store.ErrSpoolNotFound) {
			log.Err(err).Str("serial", spool.Serial).Msg("spool removal after tombstone failed")
			return models.Tombstone{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
	}

	return tombstone, nil
}

// GetAll purges expired markers first so a caller never acts on a marker
// past the retention window, then returns everything retained.
func (t *tombstoneService) GetAll(ctx context.Context) ([]models.Tombstone, error) {
	if _, err := t.Purge(ctx); err != nil {
		return nil, err
	}

	tombstones, err := t.tombstoneRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return tombstones, nil
}

// Since purges expired markers, then returns the retained ones newer than
// the caller's high-water mark.
func (t *tombstoneService) Since(ctx context.Context, mark int64) ([]models.Tombstone, error) {
	if _, err := t.Purge(ctx); err != nil {
		return nil, err
	}

	tombstones, err := t.tombstoneRepository.ListSince(ctx, mark)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return tombstones, nil
}

// Purge removes every marker whose DeletedAt predates the retention window.
func (t *tombstoneService) Purge(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	cutoff := time.Now().Add(-t.ttl).UnixMilli()

	purged, err := t.tombstoneRepository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Err(err).Int64("cutoff", cutoff).Msg("tombstone purge failed")
		return 0, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if purged > 0 {
		log.Info().Int64("purged", purged).Int64("cutoff", cutoff).Msg("expired tombstones purged")
	}

	return purged, nil
}

// Restore resurrects the recycle copy of a deleted record. The restored
// record is stamped with a fresh LastUpdated so it propagates to every
// device as the newest version, and the marker is dropped so the deletion
// stops travelling.
func (t *tombstoneService) Restore(ctx context.Context, serial string) (models.Spool, error) {
	log := logger.FromContext(ctx)

	_, recycle, err := t.tombstoneRepository.Get(ctx, serial)
	if err != nil {
		if errors.Is(err, store.ErrTombstoneNotFound) {
			return models.Spool{}, ErrTombstoneNotFound
		}
		log.Err(err).Str("serial", serial).Msg("tombstone lookup failed")
		return models.Spool{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	recycle.Deleted = false
	recycle.LastUpdated = time.Now().UnixMilli()

	if err := t.spoolRepository.Save(ctx, recycle); err != nil {
		log.Err(err).Str("serial", serial).Msg("restored spool save failed")
		return models.Spool{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := t.tombstoneRepository.Delete(ctx, serial); err != nil && !errors.Is(err, store.ErrTombstoneNotFound) {
		log.Err(err).Str("serial", serial).Msg("tombstone removal after restore failed")
		return models.Spool{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return recycle, nil
}

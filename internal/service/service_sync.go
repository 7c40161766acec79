// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/internal/validators"
	"github.com/MKhiriev/go-spool-sync/models"
)

// casAttempts bounds the read-resolve-write retries when another server
// instance races this one on the same serial.
const casAttempts = 2

// syncService is the concrete implementation of SyncService: the server-side
// engine that reconciles one client's batch of changes and deletions against
// authoritative state.
//
// Per-item failures (validation, permission, unknown record) are collected
// into the response's Skipped list and never abort the session; storage
// failures abort the session as a whole.
type syncService struct {
	spoolRepository  store.SpoolRepository
	tombstoneService TombstoneService
	hub              *BroadcastHub
	validator        validators.Validator

	// locks serializes read-resolve-write cycles per serial within this
	// process. Cross-process races are caught by the repository's
	// compare-and-save and retried here.
	locks *serialLocks

	logger *logger.Logger
}

// NewSyncService constructs a SyncService over the given repository,
// tombstone ledger and broadcast hub.
func NewSyncService(spools store.SpoolRepository, tombstones TombstoneService, hub *BroadcastHub, validator validators.Validator, logger *logger.Logger) SyncService {
	return &syncService{
		spoolRepository:  spools,
		tombstoneService: tombstones,
		hub:              hub,
		validator:        validator,
		locks:            newSerialLocks(),
		logger:           logger,
	}
}

// Sync runs one full reconciliation session for the caller:
//
//  1. apply every incoming change through the conflict resolver,
//  2. apply every incoming deletion through the tombstone ledger,
//  3. gather outgoing changes the caller has not seen, filtered by
//     visibility,
//  4. gather outgoing deletions from retained tombstones newer than the
//     caller's high-water mark.
//
// ServerTime is captured once at session start; the client persists it as
// its next lastSyncTime only after applying the whole response.
func (s *syncService) Sync(ctx context.Context, caller models.Caller, request models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	response := models.SyncResponse{
		ServerTime: time.Now().UnixMilli(),
	}

	for _, proposed := range request.Changes {
		itemErr, err := s.applyChange(ctx, caller, request.LastSyncTime, proposed)
		if err != nil {
			log.Err(err).Str("serial", proposed.Serial).Msg("change application failed")
			return models.SyncResponse{}, err
		}
		if itemErr != nil {
			response.Skipped = append(response.Skipped, *itemErr)
		}
	}

	for _, id := range request.Deletions {
		itemErr, err := s.applyDeletion(ctx, caller, id)
		if err != nil {
			log.Err(err).Str("identifier", id.String()).Msg("deletion application failed")
			return models.SyncResponse{}, err
		}
		if itemErr != nil {
			response.Skipped = append(response.Skipped, *itemErr)
		}
	}

	changed, err := s.spoolRepository.ListChangedSince(ctx, request.LastSyncTime)
	if err != nil {
		log.Err(err).Msg("outgoing change listing failed")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	for _, spool := range changed {
		if spool.AccessibleBy(caller) {
			response.Changes = append(response.Changes, spool)
		}
	}

	tombstones, err := s.tombstoneService.Since(ctx, request.LastSyncTime)
	if err != nil {
		log.Err(err).Msg("outgoing deletion listing failed")
		return models.SyncResponse{}, err
	}
	for _, tombstone := range tombstones {
		response.Deletions = append(response.Deletions, models.Identifier(tombstone.Serial))
	}

	response.Success = true

	log.Info().
		Int("incoming_changes", len(request.Changes)).
		Int("incoming_deletions", len(request.Deletions)).
		Int("outgoing_changes", len(response.Changes)).
		Int("outgoing_deletions", len(response.Deletions)).
		Int("skipped", len(response.Skipped)).
		Msg("sync session completed")

	return response, nil
}

// applyChange pushes one proposed record through the resolver and persists
// the winner. The second return value is fatal; the first is a per-item
// skip reason, nil when the item was handled (including reject-server-wins,
// which is a normal outcome and travels back via the outgoing change set).
func (s *syncService) applyChange(ctx context.Context, caller models.Caller, lastSyncTime int64, proposed models.Spool) (*models.SyncItemError, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, proposed); err != nil {
		return &models.SyncItemError{Serial: proposed.Serial, Reason: err.Error()}, nil
	}

	unlock := s.locks.Lock(proposed.Serial)
	defer unlock()

	for attempt := 0; attempt < casAttempts; attempt++ {
		var current *models.Spool

		found, err := s.spoolRepository.Get(ctx, proposed.Serial)
		switch {
		case err == nil:
			current = &found
		case errors.Is(err, store.ErrSpoolNotFound):
		default:
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		if current != nil && !current.AccessibleBy(caller) {
			return &models.SyncItemError{Serial: proposed.Serial, Reason: ErrPermissionDenied.Error()}, nil
		}

		resolution, winner := Resolve(proposed, current, lastSyncTime)
		if resolution == ResolutionServerWins {
			log.Debug().Str("serial", proposed.Serial).Msg("server version wins, proposal discarded")
			return nil, nil
		}

		var expected int64
		if current != nil {
			expected = current.LastUpdated
		}

		err = s.spoolRepository.CompareAndSave(ctx, winner, expected)
		if errors.Is(err, store.ErrSyncConflict) {
			log.Debug().Str("serial", proposed.Serial).Int("attempt", attempt+1).Msg("concurrent write detected, re-resolving")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		eventType := models.EventUpdate
		if resolution == ResolutionAcceptCreate {
			eventType = models.EventCreate
		}
		s.hub.Broadcast(models.ChangeEvent{
			Type:      eventType,
			Serial:    winner.Serial,
			Timestamp: winner.LastUpdated,
		})

		return nil, nil
	}

	return &models.SyncItemError{Serial: proposed.Serial, Reason: "concurrent modification, retry next sync"}, nil
}

// applyDeletion resolves the identifier (serial or legacy numeric id) to an
// active record, checks the caller may touch it, and buries it through the
// tombstone ledger.
func (s *syncService) applyDeletion(ctx context.Context, caller models.Caller, id models.Identifier) (*models.SyncItemError, error) {
	if err := s.validator.Validate(ctx, id); err != nil {
		return &models.SyncItemError{Serial: id.String(), Reason: err.Error()}, nil
	}

	spool, err := s.lookup(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrSpoolNotFound) {
			return &models.SyncItemError{Serial: id.String(), Reason: ErrSpoolNotFound.Error()}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	unlock := s.locks.Lock(spool.Serial)
	defer unlock()

	// Re-read under the lock: the record may have changed or vanished
	// between the identifier lookup and lock acquisition.
	spool, err = s.spoolRepository.Get(ctx, spool.Serial)
	if err != nil {
		if errors.Is(err, store.ErrSpoolNotFound) {
			return &models.SyncItemError{Serial: id.String(), Reason: ErrSpoolNotFound.Error()}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if !spool.AccessibleBy(caller) {
		return &models.SyncItemError{Serial: spool.Serial, Reason: ErrPermissionDenied.Error()}, nil
	}

	tombstone, err := s.tombstoneService.Bury(ctx, spool, caller.Device)
	if err != nil {
		return nil, err
	}

	s.hub.Broadcast(models.ChangeEvent{
		Type:      models.EventDelete,
		Serial:    spool.Serial,
		Timestamp: tombstone.DeletedAt,
	})

	return nil, nil
}

func (s *syncService) lookup(ctx context.Context, id models.Identifier) (models.Spool, error) {
	if legacyID, ok := id.LegacyID(); ok {
		return s.spoolRepository.GetByLegacyID(ctx, legacyID)
	}

	return s.spoolRepository.Get(ctx, string(id))
}

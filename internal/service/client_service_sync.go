package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spool-sync/internal/adapter"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/models"
)

// clientSyncService is the concrete implementation of ClientSyncService.
// One SyncOnce call is one full session: push dirty records and queued
// deletions, pull the server's changes and deletions, apply them, then
// advance the local high-water mark to the server's session timestamp.
type clientSyncService struct {
	localStore store.LocalSpoolRepository
	adapter    adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientSyncService constructs a ClientSyncService over the local
// repository and the server transport.
func NewClientSyncService(localStore store.LocalSpoolRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		localStore: localStore,
		adapter:    serverAdapter,
		logger:     logger,
	}
}

// SyncOnce runs one session. The high-water mark is only advanced after the
// whole server response has been applied locally, so a crash mid-apply
// replays the session instead of losing it. Records the server skipped stay
// dirty and travel again next session; queued deletions are cleared either
// way, since a skipped deletion means the record is already gone or out of
// the caller's reach.
func (s *clientSyncService) SyncOnce(ctx context.Context) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	lastSync, err := s.localStore.LastSyncTime(ctx)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("read last sync time: %w", err)
	}

	dirty, err := s.localStore.DirtySpools(ctx)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("gather dirty spools: %w", err)
	}

	pending, err := s.localStore.PendingDeletions(ctx)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("gather pending deletions: %w", err)
	}

	request := models.SyncRequest{
		LastSyncTime: lastSync,
		Changes:      dirty,
		Deletions:    pending,
	}

	response, err := s.adapter.Sync(ctx, request)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync session: %w", err)
	}

	if err = s.localStore.ApplyServerSpools(ctx, response.Changes...); err != nil {
		return models.SyncResponse{}, fmt.Errorf("apply server changes: %w", err)
	}

	for _, id := range response.Deletions {
		if err = s.localStore.Delete(ctx, string(id)); err != nil {
			return models.SyncResponse{}, fmt.Errorf("apply server deletion %s: %w", id, err)
		}
	}

	skipped := make(map[string]struct{}, len(response.Skipped))
	for _, item := range response.Skipped {
		skipped[item.Serial] = struct{}{}
		log.Warn().Str("serial", item.Serial).Str("reason", item.Reason).Msg("server skipped item")
	}

	accepted := make([]string, 0, len(dirty))
	for _, spool := range dirty {
		if _, ok := skipped[spool.Serial]; !ok {
			accepted = append(accepted, spool.Serial)
		}
	}
	if err = s.localStore.MarkClean(ctx, accepted...); err != nil {
		return models.SyncResponse{}, fmt.Errorf("mark accepted spools clean: %w", err)
	}

	if err = s.localStore.ClearDeletions(ctx, pending...); err != nil {
		return models.SyncResponse{}, fmt.Errorf("clear confirmed deletions: %w", err)
	}

	if err = s.localStore.SetLastSyncTime(ctx, response.ServerTime); err != nil {
		return models.SyncResponse{}, fmt.Errorf("advance last sync time: %w", err)
	}

	log.Info().
		Int("pushed", len(dirty)).
		Int("pulled", len(response.Changes)).
		Int("deleted", len(response.Deletions)).
		Int("skipped", len(response.Skipped)).
		Int64("server_time", response.ServerTime).
		Msg("sync session applied")

	return response, nil
}

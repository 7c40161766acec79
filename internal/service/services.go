package service

import (
	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/internal/validators"
)

type Services struct {
	AuthService      AuthService
	SyncService      SyncService
	TombstoneService TombstoneService
	BroadcastHub     *BroadcastHub
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hub := NewBroadcastHub(cfg.Events, logger)
	tombstones := NewTombstoneService(storages.TombstoneRepository, storages.SpoolRepository, cfg.Sync, logger)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		SyncService:      NewSyncService(storages.SpoolRepository, tombstones, hub, validators.NewSpoolValidator(), logger),
		TombstoneService: tombstones,
		BroadcastHub:     hub,
	}
}

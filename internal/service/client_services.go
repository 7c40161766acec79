package service

import (
	"github.com/MKhiriev/go-spool-sync/internal/adapter"
	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/store"
)

type ClientServices struct {
	SpoolService ClientSpoolService
	SyncService  ClientSyncService
	SyncAgent    ClientSyncAgent
}

func NewClientServices(localStore store.LocalSpoolRepository, serverAdapter adapter.ServerAdapter, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(localStore, serverAdapter, logger)
	agent := NewClientSyncAgent(syncSvc, cfg, logger)

	return &ClientServices{
		SpoolService: NewClientSpoolService(localStore, agent.NotifyMutation, logger),
		SyncService:  syncSvc,
		SyncAgent:    agent,
	}
}

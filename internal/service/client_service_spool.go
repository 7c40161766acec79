package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/internal/utils"
	"github.com/MKhiriev/go-spool-sync/models"
)

// clientSpoolService is the concrete implementation of ClientSpoolService.
// Writes go to the local database first and are marked dirty for the next
// synchronization session; the notify callback wakes the background agent
// so rapid edits coalesce behind its debounce window.
type clientSpoolService struct {
	localStore store.LocalSpoolRepository
	serials    *utils.SerialGenerator

	// notify signals the sync agent about a local mutation. May be nil
	// when no agent is wired (tests, one-shot CLI use).
	notify func()

	logger *logger.Logger
}

// NewClientSpoolService constructs a ClientSpoolService over the local
// repository. notify is invoked after every successful mutation.
func NewClientSpoolService(localStore store.LocalSpoolRepository, notify func(), logger *logger.Logger) ClientSpoolService {
	return &clientSpoolService{
		localStore: localStore,
		serials:    utils.NewSerialGenerator(),
		notify:     notify,
		logger:     logger,
	}
}

// Save persists a local edit. Records without a serial are treated as new
// and assigned a generated one; every save refreshes LastUpdated so the
// record wins against older replicas under last-write-wins.
func (s *clientSpoolService) Save(ctx context.Context, spool models.Spool) (models.Spool, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UnixMilli()

	if spool.Serial == "" {
		spool.Serial = s.serials.Generate()
		spool.CreatedAt = now
	}
	if spool.CreatedAt == 0 {
		spool.CreatedAt = now
	}
	spool.LastUpdated = now

	if err := s.localStore.SaveLocal(ctx, spool); err != nil {
		log.Err(err).Str("serial", spool.Serial).Msg("local spool save failed")
		return models.Spool{}, fmt.Errorf("local spool save failed: %w", err)
	}

	s.mutated()

	return spool, nil
}

func (s *clientSpoolService) Get(ctx context.Context, serial string) (models.Spool, error) {
	return s.localStore.Get(ctx, serial)
}

func (s *clientSpoolService) GetAll(ctx context.Context) ([]models.Spool, error) {
	return s.localStore.GetAll(ctx)
}

// Delete removes the record locally and queues the deletion durably so it
// survives restarts until the server has been told.
func (s *clientSpoolService) Delete(ctx context.Context, serial string) error {
	log := logger.FromContext(ctx)

	if err := s.localStore.QueueDeletion(ctx, models.Identifier(serial)); err != nil {
		log.Err(err).Str("serial", serial).Msg("local spool deletion failed")
		return fmt.Errorf("local spool deletion failed: %w", err)
	}

	s.mutated()

	return nil
}

func (s *clientSpoolService) mutated() {
	if s.notify != nil {
		s.notify()
	}
}

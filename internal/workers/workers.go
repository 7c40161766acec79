package workers

import (
	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker of the server: currently the
// periodic tombstone purge.
func NewWorkers(services *service.Services, cfg config.Sync, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewPurgeWorker(services.TombstoneService, cfg, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

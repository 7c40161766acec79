package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
)

// purgeWorker periodically removes deletion markers older than the
// retention window. Sync sessions and tombstone listings also purge on
// their own path; this worker keeps the table bounded on an idle server
// where no one is syncing.
type purgeWorker struct {
	tombstoneService service.TombstoneService
	interval         time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewPurgeWorker creates a purge worker ticking at cfg.PurgeInterval.
// The worker is idle until Run is called.
func NewPurgeWorker(tombstoneService service.TombstoneService, cfg config.Sync, logger *logger.Logger) Worker {
	return &purgeWorker{
		tombstoneService: tombstoneService,
		interval:         cfg.PurgeInterval,
		logger:           logger,
	}
}

func (p *purgeWorker) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := p.tombstoneService.Purge(ctx); err != nil {
					p.logger.Err(err).Msg("scheduled tombstone purge failed")
				}
			}
		}
	}()
}

func (p *purgeWorker) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/models"
)

// BroadcastHub fans change events out to every connected observer.
//
// Observers receive on buffered channels. Delivery is best-effort: an
// observer whose buffer is full when an event arrives is considered dead
// and is evicted, so one stalled consumer can never block the others or
// the publisher. Clients recover anything missed on their next full sync.
//
// In between events the hub emits heartbeat ticks so transports can keep
// idle connections alive. The heartbeat goroutine starts lazily on the
// first Subscribe and stops at Shutdown.
type BroadcastHub struct {
	mu        sync.Mutex
	observers map[chan models.ChangeEvent]struct{}

	bufferSize        int
	heartbeatInterval time.Duration

	startOnce sync.Once
	done      chan struct{}

	logger *logger.Logger
}

// NewBroadcastHub constructs a hub with observer buffer size and heartbeat
// cadence taken from cfg.
func NewBroadcastHub(cfg config.Events, logger *logger.Logger) *BroadcastHub {
	return &BroadcastHub{
		observers:         make(map[chan models.ChangeEvent]struct{}),
		bufferSize:        cfg.BufferSize,
		heartbeatInterval: cfg.HeartbeatInterval,
		done:              make(chan struct{}),
		logger:            logger,
	}
}

// Subscribe registers a new observer and returns its event channel. The
// channel is closed by the hub on eviction or shutdown; the observer must
// call Unsubscribe when it is done listening. Subscribing to a hub that
// has already shut down yields an immediately closed channel, so the
// observer sees end-of-stream instead of waiting on a hub that will never
// deliver.
func (h *BroadcastHub) Subscribe() chan models.ChangeEvent {
	ch := make(chan models.ChangeEvent, h.bufferSize)

	h.mu.Lock()
	select {
	case <-h.done:
		h.mu.Unlock()
		h.logger.Debug().Msg("subscribe after shutdown, returning closed channel")
		close(ch)
		return ch
	default:
	}

	h.startOnce.Do(func() {
		go h.heartbeatLoop()
	})

	h.observers[ch] = struct{}{}
	count := len(h.observers)
	h.mu.Unlock()

	h.logger.Debug().Int("observers", count).Msg("observer subscribed")

	return ch
}

// Unsubscribe removes the observer and closes its channel. Safe to call for
// a channel the hub already evicted.
func (h *BroadcastHub) Unsubscribe(ch chan models.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.remove(ch)
}

// Broadcast delivers the event to every live observer. Observers that
// cannot accept the event immediately are evicted.
func (h *BroadcastHub) Broadcast(event models.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.observers {
		select {
		case ch <- event:
		default:
			h.logger.Warn().Str("serial", event.Serial).Msg("observer buffer full, evicting")
			h.remove(ch)
		}
	}
}

// Shutdown stops the heartbeat loop and closes every observer channel.
func (h *BroadcastHub) Shutdown() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.observers {
		h.remove(ch)
	}
}

// remove must be called with h.mu held.
func (h *BroadcastHub) remove(ch chan models.ChangeEvent) {
	if _, ok := h.observers[ch]; !ok {
		return
	}
	delete(h.observers, ch)
	close(ch)
}

func (h *BroadcastHub) heartbeatLoop() {
	ticker := time.NewTicker(h.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case now := <-ticker.C:
			h.Broadcast(models.ChangeEvent{
				Type:      models.EventHeartbeat,
				Timestamp: now.UnixMilli(),
			})
		}
	}
}

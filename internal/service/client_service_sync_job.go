package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
)

// clientSyncAgent is the concrete implementation of ClientSyncAgent.
//
// All sessions run on a single goroutine, so at most one session is in
// flight; triggers are posted to a one-slot channel and coalesce while a
// session runs. A cooldown after each session absorbs trigger bursts, and
// mutation triggers pass through a debounce window so rapid local edits
// fold into a single session.
type clientSyncAgent struct {
	syncService ClientSyncService

	startupDelay   time.Duration
	interval       time.Duration
	debounceWindow time.Duration
	cooldown       time.Duration

	// triggers carries coalesced session requests into the run loop.
	triggers chan struct{}

	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	state    AgentState
	online   bool
	debounce *time.Timer
	lastRun  time.Time

	logger *logger.Logger
}

// NewClientSyncAgent creates a clientSyncAgent driving syncService with the
// timing parameters from cfg. The agent is idle until Start is called and
// assumes the device is online until told otherwise.
func NewClientSyncAgent(syncService ClientSyncService, cfg config.ClientSync, logger *logger.Logger) ClientSyncAgent {
	return &clientSyncAgent{
		syncService:    syncService,
		startupDelay:   cfg.StartupDelay,
		interval:       cfg.Interval,
		debounceWindow: cfg.DebounceWindow,
		cooldown:       cfg.Cooldown,
		triggers:       make(chan struct{}, 1),
		state:          AgentIdle,
		online:         true,
		logger:         logger,
	}
}

// Start implements ClientSyncAgent. It stops any previously running loop,
// then launches a background goroutine that runs a first session after the
// startup delay and further sessions on the periodic interval and on
// posted triggers. The goroutine exits when ctx is cancelled or Stop is
// called.
func (a *clientSyncAgent) Start(ctx context.Context) {
	a.Stop()

	a.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()

		startup := time.NewTimer(a.startupDelay)
		defer startup.Stop()

		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-startup.C:
				a.runSession(loopCtx)
			case <-ticker.C:
				a.runSession(loopCtx)
			case <-a.triggers:
				a.runSession(loopCtx)
			}
		}
	}()
}

// Stop implements ClientSyncAgent. It cancels the loop goroutine's context
// and blocks until it has fully exited. Safe to call when the agent is not
// running.
func (a *clientSyncAgent) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	if a.debounce != nil {
		a.debounce.Stop()
		a.debounce = nil
	}
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.wg.Wait()
}

// SyncNow posts an immediate trigger, bypassing the debounce window. The
// single-slot channel drops the request when a trigger is already queued.
func (a *clientSyncAgent) SyncNow() {
	a.trigger()
}

// NotifyMutation schedules a trigger after the debounce window; every call
// within the window pushes the deadline out so an edit burst produces one
// session.
func (a *clientSyncAgent) NotifyMutation() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.debounce != nil {
		a.debounce.Stop()
	}
	a.debounce = time.AfterFunc(a.debounceWindow, a.trigger)
}

// SetOnline reports connectivity. The offline-to-online transition posts a
// trigger so the device catches up right away.
func (a *clientSyncAgent) SetOnline(online bool) {
	a.mu.Lock()
	wasOnline := a.online
	a.online = online
	a.mu.Unlock()

	if online && !wasOnline {
		a.trigger()
	}
}

func (a *clientSyncAgent) State() AgentState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *clientSyncAgent) trigger() {
	select {
	case a.triggers <- struct{}{}:
	default:
	}
}

// runSession executes one synchronization session if the device is online
// and the cooldown since the previous session has elapsed. Only the run
// loop goroutine calls this, so sessions never overlap.
func (a *clientSyncAgent) runSession(ctx context.Context) {
	a.mu.Lock()
	if !a.online || time.Since(a.lastRun) < a.cooldown {
		a.mu.Unlock()
		return
	}
	a.state = AgentSyncing
	a.mu.Unlock()

	_, err := a.syncService.SyncOnce(ctx)

	a.mu.Lock()
	a.lastRun = time.Now()
	if err != nil {
		a.state = AgentError
	} else {
		a.state = AgentSuccess
	}
	a.mu.Unlock()

	if err != nil {
		a.logger.Err(err).Msg("background sync session failed")
	}

	time.AfterFunc(a.cooldown, func() {
		a.mu.Lock()
		if a.state == AgentSuccess || a.state == AgentError {
			a.state = AgentIdle
		}
		a.mu.Unlock()
	})
}

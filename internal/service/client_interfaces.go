package service

import (
	"context"

	"github.com/MKhiriev/go-spool-sync/models"
)

// ClientSpoolService is the client-side API for local inventory mutations.
// Every write marks the record dirty so the next synchronization session
// picks it up; deletions are queued durably until the server confirms them.
type ClientSpoolService interface {
	Save(ctx context.Context, spool models.Spool) (models.Spool, error)
	Get(ctx context.Context, serial string) (models.Spool, error)
	GetAll(ctx context.Context) ([]models.Spool, error)
	Delete(ctx context.Context, serial string) error
}

// ClientSyncService runs one full synchronization session against the
// server: gather local dirty records and queued deletions, exchange them,
// apply the server's response, and advance the local high-water mark.
type ClientSyncService interface {
	// SyncOnce performs a single session. The local lastSyncTime advances
	// to the server's session timestamp only after the whole response has
	// been applied locally.
	SyncOnce(ctx context.Context) (models.SyncResponse, error)
}

// AgentState names the observable phase of the background sync agent.
type AgentState string

const (
	AgentIdle    AgentState = "idle"
	AgentSyncing AgentState = "syncing"
	AgentSuccess AgentState = "success"
	AgentError   AgentState = "error"
)

// ClientSyncAgent is the background state machine driving automatic
// synchronization. It is idle until Start is called.
//
// Sessions are triggered by: a startup delay after Start, a periodic
// interval, the device transitioning offline to online, a debounced burst
// of local mutations, and explicit SyncNow calls. At most one session runs
// at a time; triggers arriving mid-session are dropped, and after each
// session a short cooldown absorbs trigger bursts.
type ClientSyncAgent interface {
	Start(ctx context.Context)
	Stop()

	// SyncNow requests an immediate session, bypassing the debounce window
	// but not the single-session guard or cooldown.
	SyncNow()

	// NotifyMutation signals a local write; the agent schedules a session
	// after the debounce window so rapid edits coalesce into one.
	NotifyMutation()

	// SetOnline reports connectivity. An offline-to-online transition
	// triggers a session; while offline the agent stays quiet.
	SetOnline(online bool)

	State() AgentState
}

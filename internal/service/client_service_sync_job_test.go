package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSyncService counts sessions and signals each one on a channel.
type stubSyncService struct {
	mu       sync.Mutex
	calls    int
	err      error
	sessions chan struct{}
}

func newStubSyncService() *stubSyncService {
	return &stubSyncService{sessions: make(chan struct{}, 16)}
}

func (s *stubSyncService) SyncOnce(context.Context) (models.SyncResponse, error) {
	s.mu.Lock()
	s.calls++
	err := s.err
	s.mu.Unlock()

	s.sessions <- struct{}{}

	if err != nil {
		return models.SyncResponse{}, err
	}
	return models.SyncResponse{Success: true, ServerTime: time.Now().UnixMilli()}, nil
}

func (s *stubSyncService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitForSession(t *testing.T, stub *stubSyncService) {
	t.Helper()
	select {
	case <-stub.sessions:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sync session")
	}
}

func assertNoSession(t *testing.T, stub *stubSyncService, within time.Duration) {
	t.Helper()
	select {
	case <-stub.sessions:
		t.Fatal("unexpected sync session")
	case <-time.After(within):
	}
}

func newTestAgent(stub *stubSyncService, cfg config.ClientSync) ClientSyncAgent {
	return NewClientSyncAgent(stub, cfg, logger.Nop())
}

func TestAgent_RunsStartupSession(t *testing.T) {
	stub := newStubSyncService()
	agent := newTestAgent(stub, config.ClientSync{
		StartupDelay:   10 * time.Millisecond,
		Interval:       time.Hour,
		DebounceWindow: time.Hour,
		Cooldown:       time.Hour,
	})

	agent.Start(context.Background())
	defer agent.Stop()

	waitForSession(t, stub)
	assert.Equal(t, 1, stub.callCount())
}

func TestAgent_SyncNowBypassesDebounce(t *testing.T) {
	stub := newStubSyncService()
	agent := newTestAgent(stub, config.ClientSync{
		StartupDelay:   time.Hour,
		Interval:       time.Hour,
		DebounceWindow: time.Hour,
		Cooldown:       0,
	})

	agent.Start(context.Background())
	defer agent.Stop()

	agent.SyncNow()
	waitForSession(t, stub)
}

func TestAgent_MutationBurstCoalescesIntoOneSession(t *testing.T) {
	stub := newStubSyncService()
	agent := newTestAgent(stub, config.ClientSync{
		StartupDelay:   time.Hour,
		Interval:       time.Hour,
		DebounceWindow: 30 * time.Millisecond,
		Cooldown:       time.Hour,
	})

	agent.Start(context.Background())
	defer agent.Stop()

	agent.NotifyMutation()
	agent.NotifyMutation()
	agent.NotifyMutation()

	waitForSession(t, stub)
	assertNoSession(t, stub, 100*time.Millisecond)
	assert.Equal(t, 1, stub.callCount())
}

func TestAgent_CooldownAbsorbsTriggerBurst(t *testing.T) {
	stub := newStubSyncService()
	agent := newTestAgent(stub, config.ClientSync{
		StartupDelay:   time.Hour,
		Interval:       time.Hour,
		DebounceWindow: time.Hour,
		Cooldown:       time.Hour,
	})

	agent.Start(context.Background())
	defer agent.Stop()

	agent.SyncNow()
	waitForSession(t, stub)

	// Still inside the cooldown: further triggers are absorbed.
	agent.SyncNow()
	assertNoSession(t, stub, 100*time.Millisecond)
	assert.Equal(t, 1, stub.callCount())
}

func TestAgent_OfflineSuppressesSessions(t *testing.T) {
	stub := newStubSyncService()
	agent := newTestAgent(stub, config.ClientSync{
		StartupDelay:   time.Hour,
		Interval:       time.Hour,
		DebounceWindow: time.Hour,
		Cooldown:       0,
	})

	agent.Start(context.Background())
	defer agent.Stop()

	agent.SetOnline(false)
	agent.SyncNow()
	assertNoSession(t, stub, 100*time.Millisecond)

	// The offline-to-online transition triggers an immediate catch-up.
	agent.SetOnline(true)
	waitForSession(t, stub)
}

func TestAgent_StateReflectsSessionOutcome(t *testing.T) {
	stub := newStubSyncService()
	stub.err = assert.AnError

	agent := newTestAgent(stub, config.ClientSync{
		StartupDelay:   time.Hour,
		Interval:       time.Hour,
		DebounceWindow: time.Hour,
		Cooldown:       50 * time.Millisecond,
	})

	agent.Start(context.Background())
	defer agent.Stop()

	assert.Equal(t, AgentIdle, agent.State())

	agent.SyncNow()
	waitForSession(t, stub)

	require.Eventually(t, func() bool {
		return agent.State() == AgentError
	}, time.Second, 5*time.Millisecond)

	// After the cooldown the terminal state decays back to idle.
	require.Eventually(t, func() bool {
		return agent.State() == AgentIdle
	}, time.Second, 5*time.Millisecond)
}

func TestAgent_StopIsIdempotent(t *testing.T) {
	stub := newStubSyncService()
	agent := newTestAgent(stub, config.ClientSync{
		StartupDelay:   time.Hour,
		Interval:       time.Hour,
		DebounceWindow: time.Hour,
		Cooldown:       time.Hour,
	})

	agent.Start(context.Background())
	agent.Stop()
	agent.Stop()
}

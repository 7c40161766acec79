// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(bufferSize int) *BroadcastHub {
	return NewBroadcastHub(config.Events{
		HeartbeatInterval: time.Hour,
		BufferSize:        bufferSize,
	}, logger.Nop())
}

func TestBroadcastHub_DeliversToEveryObserver(t *testing.T) {
	hub := newTestHub(4)
	defer hub.Shutdown()

	first := hub.Subscribe()
	second := hub.Subscribe()

	event := models.ChangeEvent{Type: models.EventUpdate, Serial: "spool-1", Timestamp: 100}
	hub.Broadcast(event)

	assert.Equal(t, event, <-first)
	assert.Equal(t, event, <-second)
}

func TestBroadcastHub_EvictsStalledObserver(t *testing.T) {
	hub := newTestHub(1)
	defer hub.Shutdown()

	stalled := hub.Subscribe()
	healthy := hub.Subscribe()

	// Fill the stalled observer's buffer, then publish once more: the
	// second event must evict it without blocking the publisher.
	hub.Broadcast(models.ChangeEvent{Type: models.EventUpdate, Serial: "a"})
	hub.Broadcast(models.ChangeEvent{Type: models.EventUpdate, Serial: "b"})

	// Drain what made it through before eviction, then observe the close.
	<-stalled
	_, open := <-stalled
	assert.False(t, open)

	// The healthy observer was drained by nobody either, so it was evicted
	// too. A fresh observer still receives new events.
	_, open = <-healthy
	require.True(t, open)

	fresh := hub.Subscribe()
	hub.Broadcast(models.ChangeEvent{Type: models.EventCreate, Serial: "c"})
	got := <-fresh
	assert.Equal(t, "c", got.Serial)
}

func TestBroadcastHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := newTestHub(4)
	defer hub.Shutdown()

	ch := hub.Subscribe()
	hub.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// Double unsubscribe is a no-op.
	hub.Unsubscribe(ch)
}

func TestBroadcastHub_ShutdownClosesAllObservers(t *testing.T) {
	hub := newTestHub(4)

	first := hub.Subscribe()
	second := hub.Subscribe()

	hub.Shutdown()

	_, open := <-first
	assert.False(t, open)
	_, open = <-second
	assert.False(t, open)
}

func TestBroadcastHub_SubscribeAfterShutdown_ChannelAlreadyClosed(t *testing.T) {
	hub := newTestHub(4)
	hub.Shutdown()

	late := hub.Subscribe()

	// A late observer must see end-of-stream immediately, never hang on a
	// hub that will deliver nothing.
	select {
	case _, open := <-late:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("channel from a shut-down hub was left open")
	}

	// The dead observer is not registered: broadcasting must not panic on
	// the closed channel.
	hub.Broadcast(models.ChangeEvent{Type: models.EventUpdate, Serial: "spool-1", Timestamp: 100})
}

func TestBroadcastHub_HeartbeatsBetweenEvents(t *testing.T) {
	hub := NewBroadcastHub(config.Events{
		HeartbeatInterval: 10 * time.Millisecond,
		BufferSize:        4,
	}, logger.Nop())
	defer hub.Shutdown()

	ch := hub.Subscribe()

	select {
	case event := <-ch:
		assert.Equal(t, models.EventHeartbeat, event.Type)
		assert.Greater(t, event.Timestamp, int64(0))
	case <-time.After(time.Second):
		t.Fatal("expected a heartbeat tick")
	}
}

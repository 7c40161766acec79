// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamRecorder guards the embedded recorder against concurrent access
// and signals every Flush, so tests can wait for a frame instead of
// polling the body while the handler goroutine is still writing it.
type streamRecorder struct {
	*httptest.ResponseRecorder

	mu      sync.Mutex
	flushed chan struct{}
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{
		ResponseRecorder: httptest.NewRecorder(),
		flushed:          make(chan struct{}, 16),
	}
}

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Write(p)
}

func (r *streamRecorder) Flush() {
	r.mu.Lock()
	r.ResponseRecorder.Flush()
	r.mu.Unlock()

	select {
	case r.flushed <- struct{}{}:
	default:
	}
}

func (r *streamRecorder) waitFlush(t *testing.T) {
	t.Helper()
	select {
	case <-r.flushed:
	case <-time.After(time.Second):
		t.Fatal("no frame was flushed in time")
	}
}

func (r *streamRecorder) bodyString() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Body.String()
}

func TestStreamEvents_ConnectedFrameThenChangeFrames(t *testing.T) {
	hub := newTestHub()
	defer hub.Shutdown()
	h := NewHandler(&service.Services{BroadcastHub: hub}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)
	req = injectNopLogger(req)
	rec := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.streamEvents(rec, req)
	}()

	rec.waitFlush(t) // connected frame

	hub.Broadcast(models.ChangeEvent{Type: models.EventUpdate, Serial: "spool-1", Timestamp: 100})
	rec.waitFlush(t)

	hub.Broadcast(models.ChangeEvent{Type: models.EventHeartbeat, Timestamp: 200})
	rec.waitFlush(t)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after client disconnect")
	}

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	body := rec.bodyString()
	assert.Contains(t, body, `data: {"type":"connected"`)
	assert.Contains(t, body, `data: {"type":"update","serial":"spool-1","timestamp":100}`+"\n\n")
	assert.Contains(t, body, ": ping\n\n")
	require.Less(t,
		strings.Index(body, `"connected"`),
		strings.Index(body, `"update"`),
		"connected frame must precede change frames",
	)
}

func TestStreamEvents_HubShutdownEndsStream(t *testing.T) {
	hub := newTestHub()
	h := NewHandler(&service.Services{BroadcastHub: hub}, logger.Nop())

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/events", nil))
	rec := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.streamEvents(rec, req)
	}()

	rec.waitFlush(t) // connected frame

	hub.Shutdown()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after hub shutdown")
	}
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithTombstoneService(svc service.TombstoneService, hub *service.BroadcastHub) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			TombstoneService: svc,
			BroadcastHub:     hub,
		},
	}
}

func TestListTombstones_Success(t *testing.T) {
	retained := []models.Tombstone{
		{Serial: "spool-1", DeletedAt: 500, DeletedBy: "printer-1"},
		{Serial: "spool-2", DeletedAt: 600},
	}

	h := newHandlerWithTombstoneService(&mockTombstoneService{
		getAllFn: func(_ context.Context) ([]models.Tombstone, error) {
			return retained, nil
		},
	}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/tombstones", nil))
	rr := httptest.NewRecorder()
	h.listTombstones(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.TombstoneListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Tombstones, 2)
	assert.Equal(t, "spool-1", response.Tombstones[0].Serial)
}

func TestListTombstones_StorageFailure(t *testing.T) {
	h := newHandlerWithTombstoneService(&mockTombstoneService{
		getAllFn: func(_ context.Context) ([]models.Tombstone, error) {
			return nil, service.ErrStorageUnavailable
		},
	}, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/tombstones", nil))
	rr := httptest.NewRecorder()
	h.listTombstones(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func executeRestore(h *Handler, serial string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/tombstones/"+serial+"/restore", nil)
	req = injectNopLogger(req)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("serial", serial)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	rr := httptest.NewRecorder()
	h.restoreSpool(rr, req)
	return rr
}

func TestRestoreSpool_Success_BroadcastsCreate(t *testing.T) {
	restored := models.Spool{Serial: "spool-1", Material: "PLA", RemainingQuantity: 480, LastUpdated: 700}

	hub := newTestHub()
	defer hub.Shutdown()
	events := hub.Subscribe()
	defer hub.Unsubscribe(events)

	h := newHandlerWithTombstoneService(&mockTombstoneService{
		restoreFn: func(_ context.Context, serial string) (models.Spool, error) {
			assert.Equal(t, "spool-1", serial)
			return restored, nil
		},
	}, hub)

	rr := executeRestore(h, "spool-1")

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Spool
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, restored.Serial, got.Serial)
	assert.Equal(t, restored.RemainingQuantity, got.RemainingQuantity)

	select {
	case event := <-events:
		assert.Equal(t, models.EventCreate, event.Type)
		assert.Equal(t, "spool-1", event.Serial)
		assert.Equal(t, restored.LastUpdated, event.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("expected a create event after restore")
	}
}

func TestRestoreSpool_NoTombstoneRetained(t *testing.T) {
	h := newHandlerWithTombstoneService(&mockTombstoneService{
		restoreFn: func(_ context.Context, _ string) (models.Spool, error) {
			return models.Spool{}, service.ErrTombstoneNotFound
		},
	}, nil)

	rr := executeRestore(h, "ghost")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

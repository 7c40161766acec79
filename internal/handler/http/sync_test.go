// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/internal/utils"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithSyncService(syncSvc service.SyncService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			SyncService: syncSvc,
		},
	}
}

func executeSync(h *Handler, caller *models.Caller, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/sync", bytes.NewBufferString(body))
	req = injectNopLogger(req)
	if caller != nil {
		req = req.WithContext(context.WithValue(req.Context(), utils.CallerCtxKey, *caller))
	}
	rr := httptest.NewRecorder()
	h.sync(rr, req)
	return rr
}

func TestSyncHandler_Success(t *testing.T) {
	caller := models.Caller{ID: 1, Role: models.RoleUser, Device: "printer-1"}

	var gotCaller models.Caller
	var gotRequest models.SyncRequest
	h := newHandlerWithSyncService(&mockSyncService{
		syncFn: func(_ context.Context, c models.Caller, request models.SyncRequest) (models.SyncResponse, error) {
			gotCaller = c
			gotRequest = request
			return models.SyncResponse{Success: true, ServerTime: 400}, nil
		},
	})

	body := `{"last_sync_time":250,"changes":[{"serial":"spool-1","material":"PLA","remaining_quantity":480,"last_updated":300}],"deletions":["old-spool"]}`

	rr := executeSync(h, &caller, body)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, caller, gotCaller)
	assert.Equal(t, int64(250), gotRequest.LastSyncTime)
	require.Len(t, gotRequest.Changes, 1)
	assert.Equal(t, "spool-1", gotRequest.Changes[0].Serial)
	assert.Equal(t, []models.Identifier{"old-spool"}, gotRequest.Deletions)

	var response models.SyncResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, int64(400), response.ServerTime)
}

func TestSyncHandler_NoCaller_Unauthorized(t *testing.T) {
	h := newHandlerWithSyncService(&mockSyncService{
		syncFn: func(_ context.Context, _ models.Caller, _ models.SyncRequest) (models.SyncResponse, error) {
			t.Fatal("Sync should not be called without a caller")
			return models.SyncResponse{}, nil
		},
	})

	rr := executeSync(h, nil, `{}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSyncHandler_InvalidJSON(t *testing.T) {
	caller := models.Caller{ID: 1}
	h := newHandlerWithSyncService(&mockSyncService{
		syncFn: func(_ context.Context, _ models.Caller, _ models.SyncRequest) (models.SyncResponse, error) {
			t.Fatal("Sync should not be called with invalid JSON")
			return models.SyncResponse{}, nil
		},
	})

	rr := executeSync(h, &caller, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSyncHandler_StorageUnavailable(t *testing.T) {
	caller := models.Caller{ID: 1}
	h := newHandlerWithSyncService(&mockSyncService{
		syncFn: func(_ context.Context, _ models.Caller, _ models.SyncRequest) (models.SyncResponse, error) {
			return models.SyncResponse{}, service.ErrStorageUnavailable
		},
	})

	rr := executeSync(h, &caller, `{}`)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "sync"))
}

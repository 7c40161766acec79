package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/utils"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
	device string

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// ServerAdapter from cfg. The device name travels with register and login
// requests so the server can embed it into the issued token.
func NewHTTPServerAdapter(cfg config.ClientAdapter) ServerAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &httpServerAdapter{client: cli, device: cfg.Device}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Device", h.device).
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.storeBearerToken(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Device", h.device).
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.storeBearerToken(resp)
}

func (h *httpServerAdapter) Sync(ctx context.Context, request models.SyncRequest) (models.SyncResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/sync")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var response models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return models.SyncResponse{}, fmt.Errorf("decode sync response: %w", err)
	}

	return response, nil
}

func (h *httpServerAdapter) Tombstones(ctx context.Context) ([]models.Tombstone, error) {
	resp, err := h.authedRequest(ctx).Get("/api/tombstones")
	if err != nil {
		return nil, fmt.Errorf("tombstones request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listed models.TombstoneListResponse
	if err = json.Unmarshal(resp.Body(), &listed); err != nil {
		return nil, fmt.Errorf("decode tombstones response: %w", err)
	}

	return listed.Tombstones, nil
}

func (h *httpServerAdapter) Restore(ctx context.Context, serial string) (models.Spool, error) {
	resp, err := h.authedRequest(ctx).Post("/api/tombstones/" + serial + "/restore")
	if err != nil {
		return models.Spool{}, fmt.Errorf("restore request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Spool{}, err
	}

	var spool models.Spool
	if err = json.Unmarshal(resp.Body(), &spool); err != nil {
		return models.Spool{}, fmt.Errorf("decode restore response: %w", err)
	}

	return spool, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) storeBearerToken(resp *resty.Response) (models.Token, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token}, nil
}

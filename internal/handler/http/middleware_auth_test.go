package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/internal/utils"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func TestAuth_Middleware_TableTest(t *testing.T) {
	validToken := models.Token{
		UserID: 42,
		TokenClaims: models.TokenClaims{
			Role:   models.RoleUser,
			Device: "printer-1",
		},
	}

	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		nextCalled     bool
		wantCaller     models.Caller
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid header format (no space) → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token → next called, caller in context",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantCaller:     models.Caller{ID: 42, Role: models.RoleUser, Device: "printer-1"},
		},
		{
			name:       "expired or forged token → 401",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseTokenFn := tt.parseTokenFn
			if parseTokenFn == nil {
				parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}
			}

			h := newHandlerWithAuthService(&mockAuthService{parseTokenFn: parseTokenFn})

			nextCalled := false
			var capturedCaller models.Caller
			var callerFound bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedCaller, callerFound = utils.GetCallerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled {
				require.True(t, callerFound)
				assert.Equal(t, tt.wantCaller, capturedCaller)
			}
		})
	}
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Hand-rolled service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User, device string) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User, device string) (models.Token, error) {
	return m.createTokenFn(ctx, user, device)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockSyncService struct {
	syncFn func(ctx context.Context, caller models.Caller, request models.SyncRequest) (models.SyncResponse, error)
}

func (m *mockSyncService) Sync(ctx context.Context, caller models.Caller, request models.SyncRequest) (models.SyncResponse, error) {
	return m.syncFn(ctx, caller, request)
}

type mockTombstoneService struct {
	buryFn    func(ctx context.Context, spool models.Spool, deletedBy string) (models.Tombstone, error)
	getAllFn  func(ctx context.Context) ([]models.Tombstone, error)
	sinceFn   func(ctx context.Context, mark int64) ([]models.Tombstone, error)
	purgeFn   func(ctx context.Context) (int64, error)
	restoreFn func(ctx context.Context, serial string) (models.Spool, error)
}

func (m *mockTombstoneService) Bury(ctx context.Context, spool models.Spool, deletedBy string) (models.Tombstone, error) {
	return m.buryFn(ctx, spool, deletedBy)
}

func (m *mockTombstoneService) GetAll(ctx context.Context) ([]models.Tombstone, error) {
	return m.getAllFn(ctx)
}

func (m *mockTombstoneService) Since(ctx context.Context, mark int64) ([]models.Tombstone, error) {
	return m.sinceFn(ctx, mark)
}

func (m *mockTombstoneService) Purge(ctx context.Context) (int64, error) {
	return m.purgeFn(ctx)
}

func (m *mockTombstoneService) Restore(ctx context.Context, serial string) (models.Spool, error) {
	return m.restoreFn(ctx, serial)
}

func newTestHub() *service.BroadcastHub {
	return service.NewBroadcastHub(config.Events{
		HeartbeatInterval: time.Hour,
		BufferSize:        4,
	}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context so handlers
// called outside the middleware chain can still log.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register. Protected
// routes answer 401 without a token, never 404/405.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/user/register"},
	{http.MethodPost, "/api/user/login"},
	{http.MethodPost, "/api/sync"},
	{http.MethodGet, "/api/tombstones"},
	{http.MethodPost, "/api/tombstones/spool-1/restore"},
	{http.MethodGet, "/api/events"},
}

func TestInit_RegistersRoutes(t *testing.T) {
	h := NewHandler(&service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
			loginFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
		},
	}, logger.Nop())

	router := h.Init()
	require.NotNil(t, router)

	for _, route := range expectedRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.NotEqual(t, http.StatusNotFound, rr.Code, "route not registered")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code, "wrong method registered")
		})
	}
}

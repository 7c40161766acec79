package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRegister(h *Handler, body string, device string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
	req = injectNopLogger(req)
	if device != "" {
		req.Header.Set(deviceHeader, device)
	}
	rr := httptest.NewRecorder()
	h.register(rr, req)
	return rr
}

func executeLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.login(rr, req)
	return rr
}

func TestRegister_Success_TokenInHeader(t *testing.T) {
	var tokenDevice string
	h := newHandlerWithAuthService(&mockAuthService{
		registerUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		},
		createTokenFn: func(_ context.Context, user models.User, device string) (models.Token, error) {
			tokenDevice = device
			return models.Token{SignedString: "signed-jwt", UserID: user.UserID}, nil
		},
	})

	rr := executeRegister(h, `{"login":"zuhra","password":"qwerty123"}`, "printer-1")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed-jwt", rr.Header().Get("Authorization"))
	assert.Equal(t, "printer-1", tokenDevice)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})

	rr := executeRegister(h, `{broken`, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_LoginTaken(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	})

	rr := executeRegister(h, `{"login":"zuhra","password":"qwerty123"}`, "")

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestLogin_Success_TokenInHeader(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{UserID: 7, Login: "zuhra"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User, _ string) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt"}, nil
		},
	})

	rr := executeLogin(h, `{"login":"zuhra","password":"qwerty123"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed-jwt", rr.Header().Get("Authorization"))
}

func TestLogin_WrongCredentials(t *testing.T) {
	for _, loginErr := range []error{store.ErrNoUserWasFound, service.ErrWrongPassword} {
		h := newHandlerWithAuthService(&mockAuthService{
			loginFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, loginErr
			},
		})

		rr := executeLogin(h, `{"login":"zuhra","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "error: %v", loginErr)
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	})

	rr := executeLogin(h, `{"login":"zuhra"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

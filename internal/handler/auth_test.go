package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-dev/portfolio-api/internal/config"
	"github.com/portfolio-dev/portfolio-api/internal/domain"
	internal_errors "github.com/portfolio-dev/portfolio-api/internal/errors"
)

type MockAuthService struct {
	MockLogin func(creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return "", nil
}

func newAuthRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	return r
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "accessToken" {
			return c
		}
	}
	return nil
}

func TestLoginHandler(t *testing.T) {
	cfg := &config.Config{}
	cfg.Public.SessionTTLHours = 24
	cfg.Public.SecureCookies = true
	h := &Handler{cfg: cfg}
	router := newAuthRouter(h)

	t.Run("successful login sets session cookie", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(creds domain.Credentials) (string, error) {
				return "signed-token", nil
			},
		}

		body := []byte(`{"email": "admin@example.com", "password": "hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		cookie := sessionCookie(rr)
		require.NotNil(t, cookie)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

		var resp loginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Success)
	})

	t.Run("wrong credentials get 401 and no cookie", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(creds domain.Credentials) (string, error) {
				return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
			},
		}

		body := []byte(`{"email": "admin@example.com", "password": "wrong"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, sessionCookie(rr))

		var resp loginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid credentials", resp.Error)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer([]byte(`{"email": "admin@example.com"}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	h := &Handler{cfg: &config.Config{}}
	router := newAuthRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

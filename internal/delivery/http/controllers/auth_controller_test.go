package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communitycalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token     string
	user      *domain.User
	err       error
	lastCreds *domain.Credentials
}

func (f *fakeAuthService) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	f.lastCreds = &creds
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func loginBody(t *testing.T, req LoginRequest) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success returns token and user", func(t *testing.T) {
		svc := &fakeAuthService{
			token: "jwt-token",
			user:  &domain.User{ID: "u-1", Email: "admin@example.com"},
		}
		c := NewAuthController(testLogger, svc)

		rec := httptest.NewRecorder()
		body := loginBody(t, LoginRequest{
			Email:         "admin@example.com",
			Password:      "secret",
			CaptchaA:      2,
			CaptchaB:      5,
			CaptchaAnswer: 7,
		})
		c.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", body))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		require.NotNil(t, resp.User)
		assert.Equal(t, "admin@example.com", resp.User.Email)

		require.NotNil(t, svc.lastCreds)
		assert.Equal(t, 2, svc.lastCreds.CaptchaA)
		assert.Equal(t, 7, svc.lastCreds.CaptchaAnswer)
	})

	t.Run("missing email or password is a 400", func(t *testing.T) {
		svc := &fakeAuthService{}
		c := NewAuthController(testLogger, svc)

		rec := httptest.NewRecorder()
		c.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", loginBody(t, LoginRequest{Email: "  "})))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.lastCreds)
	})

	t.Run("invalid credentials are a 401", func(t *testing.T) {
		svc := &fakeAuthService{err: domain.ErrInvalidCredentials}
		c := NewAuthController(testLogger, svc)

		rec := httptest.NewRecorder()
		body := loginBody(t, LoginRequest{Email: "admin@example.com", Password: "wrong"})
		c.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", body))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid credentials", decodeError(t, rec.Body))
	})

	t.Run("unexpected failure is a generic 500", func(t *testing.T) {
		svc := &fakeAuthService{err: errors.New("db down")}
		c := NewAuthController(testLogger, svc)

		rec := httptest.NewRecorder()
		body := loginBody(t, LoginRequest{Email: "admin@example.com", Password: "secret"})
		c.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", body))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "failed to log in", decodeError(t, rec.Body))
	})
}

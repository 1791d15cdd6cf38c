package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunflix/backend/internal/auth"
	"github.com/sunflix/backend/internal/config"
	"github.com/sunflix/backend/internal/server"
	"github.com/sunflix/backend/internal/storage/memory"
)

func newHandler(t *testing.T, rateLimit int) http.Handler {
	t.Helper()
	cfg := config.Config{
		JWTSecret:     "server-test-secret",
		TokenTTL:      7 * 24 * time.Hour,
		CORSOrigins:   []string{"*"},
		AuthRateLimit: rateLimit,
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	return server.Router(cfg, memory.New(), tokens)
}

func post(handler http.Handler, path string, payload map[string]string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestSignupLoginScenario walks the documented happy and sad paths in one
// sequence: register, log in, then fail with a wrong password.
func TestSignupLoginScenario(t *testing.T) {
	handler := newHandler(t, 10000)

	rec := post(handler, "/api/auth/signup", map[string]string{
		"name": "Ann", "email": "ann@x.com", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var signedUp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signedUp))
	require.NotEmpty(t, signedUp.Token)

	rec = post(handler, "/api/auth/login", map[string]string{
		"email": "ann@x.com", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var loggedIn struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))

	tokens := auth.NewTokenManager("server-test-secret", 7*24*time.Hour)
	subject, err := tokens.Verify(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, subject)

	rec = post(handler, "/api/auth/login", map[string]string{
		"email": "ann@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	handler := newHandler(t, 10000)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["dbConnected"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAuthEndpointsAreRateLimited(t *testing.T) {
	handler := newHandler(t, 2)

	payload := map[string]string{"email": "ann@x.com", "password": "guess"}
	codes := make(map[int]int)
	for i := 0; i < 5; i++ {
		rec := post(handler, "/api/auth/login", payload)
		codes[rec.Code]++
	}
	assert.Positive(t, codes[http.StatusTooManyRequests], "burst beyond the budget is rejected")

	// Catalog routes are not rate limited.
	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

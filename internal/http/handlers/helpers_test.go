package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sunflix/backend/internal/auth"
	"github.com/sunflix/backend/internal/config"
	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/server"
	"github.com/sunflix/backend/internal/storage/memory"
)

const testSecret = "handlers-test-secret"

// newTestServer builds the real route tree over an in-memory store.
func newTestServer(t *testing.T) (*memory.Store, *auth.TokenManager, http.Handler) {
	t.Helper()
	cfg := config.Config{
		JWTSecret:     testSecret,
		TokenTTL:      7 * 24 * time.Hour,
		CORSOrigins:   []string{"*"},
		AuthRateLimit: 10000,
	}
	store := memory.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	return store, tokens, server.Router(cfg, store, tokens)
}

// doJSON performs a request against the handler and returns the recorder.
func doJSON(t *testing.T, handler http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, rec, &body)
	return body["error"]
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// signup registers a user through the API and returns the response.
func signup(t *testing.T, handler http.Handler, name, email, password string) authResponse {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": name, "email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, "signup body: %s", rec.Body.String())
	var out authResponse
	decodeBody(t, rec, &out)
	return out
}

// seedAdmin provisions an admin account directly in the store, the way
// operations would outside the API.
func seedAdmin(t *testing.T, store *memory.Store, email, password string) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	admin, err := store.CreateUser(context.Background(), models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Approved:     true,
	})
	require.NoError(t, err)
	return admin
}

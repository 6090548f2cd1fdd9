//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"peopled/internal/app"
	"peopled/internal/config"
	internaldb "peopled/internal/db"
	"peopled/internal/middleware"
)

type httpEnv struct {
	Server *httptest.Server
}

// setupHTTPServer boots the fully wired application against a temp SQLite
// file, with the bootstrap admin seeded from config, exactly as main() does.
func setupHTTPServer(t *testing.T) *httpEnv {
	t.Helper()

	writeDB, readDB := internaldb.OpenTestSQLite(t)

	cfg := &config.Config{
		JWTSecret:      "integration-secret",
		TokenTTL:       time.Hour,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		AdminEmail:     "admin@example.com",
		AdminPassword:  "admin password",
	}

	a, err := app.New(context.Background(), app.Deps{
		Cfg:     cfg,
		WriteDB: writeDB,
		ReadDB:  readDB,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	r.Mount("/", a.Handler.Routes(a.Tokens))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &httpEnv{Server: srv}
}

func doRequest(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// login returns a session token for the given credentials.
func login(t *testing.T, baseURL, email, password string) string {
	t.Helper()
	resp := doRequest(t, http.MethodPost, baseURL+"/v1/auth/login", "",
		map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

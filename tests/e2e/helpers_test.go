//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/vocamemo-backend/internal/app"
	authpkg "github.com/heartmarshall/vocamemo-backend/internal/auth"
	"github.com/heartmarshall/vocamemo-backend/internal/config"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			ShutdownTimeout: 5 * time.Second,
			RateLimitPerMin: 10000,
		},
		Auth: config.AuthConfig{
			JWTSecret:      testJWTSecret,
			JWTIssuer:      testJWTIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
		Study: config.StudyConfig{
			Timezone:           "UTC",
			RecentDays:         7,
			MaxSessionItems:    1000,
			StatusWriteTimeout: 5 * time.Second,
			SessionTTL:         time.Hour,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	srv, err := app.NewServer(cfg, logger, pool)
	require.NoError(t, err)

	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		hs.Close()
		srv.Close()
	})

	return &testServer{
		URL:    hs.URL,
		Client: hs.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// newUser returns a fresh user id and a valid access token for it.
func newUser(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	tok, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return tok, userID
}

// do sends a JSON request and decodes a JSON response into out (if non-nil).
func (ts *testServer) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type library struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type item struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	StudyStatus string    `json:"study_status"`
}

type session struct {
	ID       uuid.UUID `json:"id"`
	State    string    `json:"state"`
	Total    int       `json:"total"`
	Cursor   int       `json:"cursor"`
	Flipped  bool      `json:"flipped"`
	Progress float64   `json:"progress"`
	Current  *struct {
		ID       uuid.UUID `json:"id"`
		Question string    `json:"question"`
		Answer   *string   `json:"answer"`
	} `json:"current"`
	Results struct {
		Correct int `json:"correct"`
		Wrong   int `json:"wrong"`
	} `json:"results"`
}

// createLibraryWithItems creates a library over the API and adds n items.
func createLibraryWithItems(t *testing.T, ts *testServer, token string, n int) (library, []item) {
	t.Helper()

	var lib library
	status := ts.do(t, http.MethodPost, "/api/libraries", token, map[string]any{"title": "deck-" + uuid.NewString()[:8]}, &lib)
	require.Equal(t, http.StatusCreated, status)

	items := make([]item, 0, n)
	for i := 0; i < n; i++ {
		var it item
		status := ts.do(t, http.MethodPost, "/api/libraries/"+lib.ID.String()+"/items", token,
			map[string]any{"question": "q" + uuid.NewString()[:4], "answer": "a"}, &it)
		require.Equal(t, http.StatusCreated, status)
		items = append(items, it)
	}
	return lib, items
}

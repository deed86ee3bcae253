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

	"github.com/tabline/tabline-backend/internal/adapter/postgres"
	lessonrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/lesson"
	lessonsongrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/lessonsong"
	songrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/song"
	"github.com/tabline/tabline-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/tabline/tabline-backend/internal/auth"
	"github.com/tabline/tabline-backend/internal/config"
	lessonsvc "github.com/tabline/tabline-backend/internal/service/lesson"
	songsvc "github.com/tabline/tabline-backend/internal/service/song"
	"github.com/tabline/tabline-backend/internal/service/songimport"
	"github.com/tabline/tabline-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
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
	w.t.Log(string(bytes.TrimSpace(p)))
	return len(p), nil
}

// setupTestServer starts a Postgres container, wires the whole application
// and serves it over httptest.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	songs := songrepo.New(pool)
	lessons := lessonrepo.New(pool)
	lessonSongs := lessonsongrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	importSvc := songimport.NewService(logger, songimport.Config{
		MatchThreshold:  0.3,
		MatchConfidence: 0.6,
		MaxRows:         1000,
	}, songs, lessons, lessonSongs)
	songService := songsvc.NewService(logger, songs, 0.3)
	lessonService := lessonsvc.NewService(logger, lessons, lessonSongs, txm)

	jwt := authpkg.NewJWTManager("e2e-test-secret-at-least-32-chars!", "tabline-e2e", time.Hour)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Validator: jwt,
		CORS:      config.CORSConfig{AllowedOrigins: "*"},
		Health:    rest.NewHealthHandler(pool, "e2e"),
		Imports:   rest.NewImportHandler(importSvc, logger),
		Songs:     rest.NewSongHandler(songService, logger),
		Lessons:   rest.NewLessonHandler(lessonService, logger),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwt,
	}
}

// tokenFor issues a signed access token for the given user.
func (ts *testServer) tokenFor(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// doJSON sends a JSON request with an optional bearer token and decodes
// the envelope body into a map.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// dataMap extracts the "data" object from a success envelope.
func dataMap(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	require.Equal(t, true, body["success"], "expected success envelope, got %v", body)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %v", body["data"])
	return data
}

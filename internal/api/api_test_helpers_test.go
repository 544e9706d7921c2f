package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/memory-cards/internal/api/middleware"
	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/config"
	"github.com/phrazzld/memory-cards/internal/domain/catalog"
	"github.com/phrazzld/memory-cards/internal/events"
	"github.com/phrazzld/memory-cards/internal/game"
	"github.com/phrazzld/memory-cards/internal/platform/durationfmt"
	"github.com/phrazzld/memory-cards/internal/platform/idgen"
	"github.com/phrazzld/memory-cards/internal/service/auth"
	"github.com/phrazzld/memory-cards/internal/session"
)

const testSecret = "api-test-secret-that-is-32-chars-long"

type testServer struct {
	handler  http.Handler
	registry *session.Registry
	tokens   auth.TokenService
	clock    *clockwork.FakeClock
}

func newTestServer(t *testing.T, maxGames int) *testServer {
	t.Helper()

	log := discardLog()
	dealer := catalog.NewFixtureCatalog()
	br := board.NewReducer(dealer, idgen.Random(), durationfmt.Live(), board.DefaultTimings(), log)
	reducer := game.NewReducer(br, log)

	clock := clockwork.NewFakeClock()
	cfg := session.DefaultRegistryConfig()
	cfg.MaxGames = maxGames
	registry := session.NewRegistry(cfg, reducer, clock, events.NewBus(log), idgen.Random(), log)
	t.Cleanup(registry.Stop)

	tokens, err := auth.NewTokenService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)

	router := NewRouter(RouterDeps{
		Games:  NewGameHandler(registry, tokens, log),
		Levels: NewLevelHandler(dealer, log),
		Auth:   middleware.NewAuthMiddleware(tokens),
		Logger: log,
	})

	return &testServer{handler: router, registry: registry, tokens: tokens, clock: clock}
}

// do performs a request and returns the recorder
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

// create makes a game and returns its creation response
func (s *testServer) create(t *testing.T, body interface{}) CreateGameResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/games", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeGame(t *testing.T, w *httptest.ResponseRecorder) GameResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serve calls a handler directly, outside the router
func serve(h http.HandlerFunc, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(method, path, nil))
	return w
}

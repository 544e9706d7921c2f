package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/memory-cards/internal/api/middleware"
)

// RouterDeps holds what the router needs to build its handlers
type RouterDeps struct {
	Games  *GameHandler
	Levels *LevelHandler
	Auth   *middleware.AuthMiddleware
	Logger *slog.Logger
}

// NewRouter creates the application router with all routes and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	if deps.Games == nil || deps.Levels == nil || deps.Auth == nil || deps.Logger == nil {
		panic("router dependencies cannot be nil")
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewTraceMiddleware(deps.Logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/levels", deps.Levels.ListLevels)
		r.Post("/games", deps.Games.CreateGame)

		r.Route("/games/{"+middleware.GameIDParam+"}", func(r chi.Router) {
			r.Use(deps.Auth.Authenticate)

			r.Get("/", deps.Games.GetGame)
			r.Delete("/", deps.Games.DeleteGame)
			r.Put("/options", deps.Games.UpdateOptions)
			r.Post("/play", deps.Games.Play)
			r.Post("/cards/{cardID}/tap", deps.Games.TapCard)
			r.Post("/summary", deps.Games.SelectSummary)
			r.Post("/quit", deps.Games.Quit)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.Logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

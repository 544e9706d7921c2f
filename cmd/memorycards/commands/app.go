package commands

import (
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/phrazzld/memory-cards/internal/api"
	apiMiddleware "github.com/phrazzld/memory-cards/internal/api/middleware"
	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/config"
	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/domain/catalog"
	"github.com/phrazzld/memory-cards/internal/events"
	"github.com/phrazzld/memory-cards/internal/game"
	"github.com/phrazzld/memory-cards/internal/platform/durationfmt"
	"github.com/phrazzld/memory-cards/internal/platform/idgen"
	"github.com/phrazzld/memory-cards/internal/service/auth"
	"github.com/phrazzld/memory-cards/internal/session"
)

// application holds the shared dependencies of the server so they can be
// built once and cleaned up together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	catalog  *catalog.Catalog
	tokens   auth.TokenService
	events   *events.Bus
	registry *session.Registry
}

// newApplication wires every component from cfg. The registry is not
// started; call start before serving.
func newApplication(cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*application, error) {
	app := &application{config: cfg, logger: logger}

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("game token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	seed := cfg.Game.ShuffleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	app.catalog = catalog.NewCatalogWithParams(
		progressionParams(cfg.Game.Progression),
		rand.New(rand.NewSource(seed)))

	app.events = events.NewBus(logger)
	app.events.Subscribe(
		events.Filter{Types: []string{events.TypeLevelCompleted, events.TypeGameFinished}},
		events.NewLoggingHandler(logger))

	boardReducer := board.NewReducer(
		app.catalog,
		idgen.Random(),
		durationfmt.Live(),
		timingsFromConfig(cfg.Game),
		logger,
	)

	app.registry = session.NewRegistry(
		session.RegistryConfig{
			MaxGames:     cfg.Game.MaxGames,
			IdleTimeout:  cfg.Game.IdleTimeout,
			ReapInterval: cfg.Game.ReapInterval,
		},
		game.NewReducer(boardReducer, logger),
		clock,
		app.events,
		idgen.Random(),
		logger,
	)

	return app, nil
}

func timingsFromConfig(cfg config.GameConfig) board.Timings {
	return board.Timings{
		Settle:    cfg.SettleDelay,
		ShowMatch: cfg.MatchDelay,
		Mismatch:  cfg.MismatchDelay,
		Complete:  cfg.CompleteDelay,
		Tick:      cfg.TickInterval,
	}
}

// router builds the HTTP handler tree
func (app *application) router() http.Handler {
	return api.NewRouter(api.RouterDeps{
		Games:  api.NewGameHandler(app.registry, app.tokens, app.logger),
		Levels: api.NewLevelHandler(app.catalog, app.logger),
		Auth:   apiMiddleware.NewAuthMiddleware(app.tokens),
		Logger: app.logger,
	})
}

func (app *application) start() {
	app.registry.Start()
	app.logger.Info("game registry started",
		"max_games", app.config.Game.MaxGames,
		"idle_timeout", app.config.Game.IdleTimeout)
}

// cleanup closes every hosted game
func (app *application) cleanup() {
	app.registry.Stop()
}

// progressionParams converts the configured progression into catalog parameters
func progressionParams(cfg config.ProgressionConfig) *catalog.Params {
	return catalog.NewParams(catalog.ParamsConfig{
		EasyInitialLevel:   domain.LevelType(cfg.EasyInitial),
		MediumInitialLevel: domain.LevelType(cfg.MediumInitial),
		HardInitialLevel:   domain.LevelType(cfg.HardInitial),
		EasyFinalLevel:     domain.LevelType(cfg.EasyFinal),
		MediumFinalLevel:   domain.LevelType(cfg.MediumFinal),
		HardFinalLevel:     domain.LevelType(cfg.HardFinal),
	})
}

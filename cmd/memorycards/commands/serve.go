package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/phrazzld/memory-cards/internal/config"
	"github.com/phrazzld/memory-cards/internal/platform/logger"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the game HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, *configPath)
		},
	}
}

// runServer loads configuration, builds the application and serves until
// ctx is cancelled.
func runServer(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, log, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	app.start()

	listener, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(cfg.Server.Port)))
	if err != nil {
		app.cleanup()
		return fmt.Errorf("failed to listen on port %d: %w", cfg.Server.Port, err)
	}
	return app.serve(ctx, listener)
}

// serve runs the HTTP server on listener with graceful shutdown once ctx
// is done.
func (app *application) serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{Handler: app.router()}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("server failed", "error", err)
			errCh <- err
			cancelServer()
		}
	}()

	<-serverCtx.Done()
	app.logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer shutdownCancel()

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("server shutdown failed", "error", err)
		shutdownErr = fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()
	app.logger.Info("server shutdown completed")

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	default:
		return shutdownErr
	}
}

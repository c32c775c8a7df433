// Package server wires the kudos application together: configuration,
// logging, the database pool with migrations, the session manager, the
// services and the HTTP server, plus graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/kudosapp/kudos/internal/logging"
	"github.com/kudosapp/kudos/internal/server/auth"
	"github.com/kudosapp/kudos/internal/server/config"
	"github.com/kudosapp/kudos/internal/server/repositories/repomanager"
	"github.com/kudosapp/kudos/internal/server/services"
	"github.com/kudosapp/kudos/internal/server/web"
)

// shutdownTimeout bounds how long in-flight requests may drain after a
// termination signal.
const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	web    *web.Server
}

// NewApp builds the full application: it opens the database, runs the
// migrations, constructs the session manager and the services, and registers
// the HTTP routes.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger := logging.NewZerologLogger(zl)

	db, err := repomanager.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgres()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	sessions, err := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionMaxAge, cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	srv := web.New(logger,
		sessions,
		services.NewUserService(db, rm),
		services.NewKudoService(db, rm),
		services.NewAvatarService(cfg),
	)

	return &App{config: cfg, logger: logger, web: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is cancelled or a termination signal
// arrives, then drains in-flight requests.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)
		errCh <- app.web.Listen(app.config.EndpointAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return app.web.Shutdown(shutdownCtx)
}

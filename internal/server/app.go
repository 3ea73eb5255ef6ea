// Package server initializes and runs the portal backend: it opens the
// database, applies migrations, wires services, and starts the gRPC server
// with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/clientportal/internal/logging"
	"github.com/dmitrijs2005/clientportal/internal/server/blob"
	"github.com/dmitrijs2005/clientportal/internal/server/config"
	"github.com/dmitrijs2005/clientportal/internal/server/notify"
	"github.com/dmitrijs2005/clientportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/clientportal/internal/server/services"

	gs "github.com/dmitrijs2005/clientportal/internal/server/grpc"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	db                  *sql.DB
	identityService     *services.IdentityService
	onboardingService   *services.OnboardingService
	conversationService *services.ConversationService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hub := notify.NewHub()
	blobs := blob.NewStore(c)

	is := services.NewIdentityService(db, rm, c)
	obs := services.NewOnboardingService(db, rm, c)
	cs := services.NewConversationService(db, rm, blobs, hub)

	return &App{
		config:              c,
		logger:              logger,
		db:                  db,
		identityService:     is,
		onboardingService:   obs,
		conversationService: cs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.identityService, app.onboardingService, app.conversationService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}

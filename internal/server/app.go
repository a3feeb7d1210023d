// Package server wires the content server: storage, services, the push hub
// and the gRPC endpoint, and runs them until a shutdown signal arrives.
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
	"time"

	"github.com/FBurak/Restaurant-Web/internal/logging"
	"github.com/FBurak/Restaurant-Web/internal/server/config"
	"github.com/FBurak/Restaurant-Web/internal/server/hub"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/repomanager"
	"github.com/FBurak/Restaurant-Web/internal/server/services"

	gs "github.com/FBurak/Restaurant-Web/internal/server/grpc"
)

const tokenPurgeInterval = time.Hour

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	hub               *hub.Hub
	userService       *services.UserService
	restaurantService *services.RestaurantService
	blobService       *services.BlobService
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	h := hub.New(logger)

	app := &App{
		config:            c,
		logger:            logger,
		db:                db,
		hub:               h,
		userService:       services.NewUserService(db, rm, c),
		restaurantService: services.NewRestaurantService(db, rm, h, c.DefaultRestaurantName),
		blobService:       services.NewBlobService(db, rm, c),
	}

	if err := app.ensureAdmin(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

func (app *App) ensureAdmin(ctx context.Context) error {
	if app.config.AdminEmail == "" || app.config.AdminPassword == "" {
		return nil
	}
	created, err := app.userService.EnsureAdmin(ctx, app.config.AdminEmail, []byte(app.config.AdminPassword))
	if err != nil {
		return fmt.Errorf("admin bootstrap error: %w", err)
	}
	if created {
		app.logger.Info(ctx, "Created admin account", "email", services.NormalizeEmail(app.config.AdminEmail))
	}
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.restaurantService, app.blobService, app.hub, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// runPeriodically calls fn every interval until ctx is done.
func runPeriodically(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

func (app *App) purgeExpiredTokens(ctx context.Context) {
	n, err := app.userService.PurgeExpiredTokens(ctx)
	if err != nil {
		app.logger.Warn(ctx, "refresh token purge failed", "error", err)
		return
	}
	if n > 0 {
		app.logger.Info(ctx, "Purged expired refresh tokens", "count", n)
	}
}

// Run serves until a signal arrives or ctx is done, then closes the hub
// and the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		runPeriodically(ctx, tokenPurgeInterval, app.purgeExpiredTokens)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		app.hub.Close()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}

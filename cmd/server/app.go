package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/florawise/guild-api/internal/config"
	"github.com/florawise/guild-api/internal/domain/guild"
	"github.com/florawise/guild-api/internal/platform/postgres"
	"github.com/florawise/guild-api/internal/service"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	catalogProvider  *service.CatalogProvider
	catalogRefresher *service.CatalogRefresher
	guildService     service.GuildService
}

// newApplication creates an application with all dependencies initialized
// and the initial catalog loaded. It accepts the core dependencies that must
// be established before wiring: configuration, logger, and database.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	appLogger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: appLogger,
		db:     db,
	}

	plantStore := postgres.NewPostgresPlantStore(db, appLogger)

	var err error
	app.catalogProvider, err = service.NewCatalogProvider(plantStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog provider: %w", err)
	}

	engine := guild.NewServiceWithParams(guild.NewParams(guild.ParamsConfig{
		CanopyHeightFt:     cfg.Engine.CanopyHeightFt,
		BaselineScore:      cfg.Engine.BaselineScore,
		RegionWeight:       cfg.Engine.RegionWeight,
		NicheWeight:        cfg.Engine.NicheWeight,
		NitrogenFixerBonus: cfg.Engine.NitrogenFixerBonus,
	}))

	app.guildService, err = service.NewGuildService(app.catalogProvider, engine, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild service: %w", err)
	}

	// Load the catalog before serving so the first request does not race
	// the initial fetch.
	count, err := app.catalogProvider.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial catalog: %w", err)
	}
	appLogger.Info("initial catalog loaded", "records", count)

	app.catalogRefresher = service.NewCatalogRefresher(
		app.catalogProvider,
		service.CatalogRefresherConfig{
			Interval: time.Duration(cfg.Catalog.RefreshIntervalMinutes) * time.Minute,
		},
		appLogger,
	)
	app.catalogRefresher.Start()

	appLogger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.catalogRefresher != nil {
		app.catalogRefresher.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}

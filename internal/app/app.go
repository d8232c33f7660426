package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/database"
	issueservice "github.com/thenoetrevino/issuetracker/internal/services/issue"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Repository layer (direct database access)
	db     *sql.DB
	ownsDB bool
	repo   database.DataStore

	// Service layer (business logic)
	IssueService issueservice.Service
}

// New creates a new App with all services initialized.
// Unless WithDB is given, the database named by cfg.Database.DSN is opened
// and migrated, and Close will close it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	db := options.db
	ownsDB := false
	if db == nil {
		var err error
		db, err = database.InitDB(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		ownsDB = true
	}

	repo := database.NewRepository(db)

	serviceOpts := []issueservice.Option{issueservice.WithLogger(options.logger)}
	if options.clock != nil {
		serviceOpts = append(serviceOpts, issueservice.WithClock(options.clock))
	}
	if options.newID != nil {
		serviceOpts = append(serviceOpts, issueservice.WithIDGenerator(options.newID))
	}

	return &App{
		Config:       cfg,
		Logger:       options.logger,
		db:           db,
		ownsDB:       ownsDB,
		repo:         repo,
		IssueService: issueservice.NewService(repo, serviceOpts...),
	}, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database if the App opened it.
func (a *App) Close() error {
	if !a.ownsDB || a.db == nil {
		return nil
	}
	return a.db.Close()
}

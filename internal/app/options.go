package app

import (
	"database/sql"
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	db     *sql.DB
	logger *slog.Logger
	clock  func() time.Time
	newID  func() string
}

// WithDB uses an already opened and migrated database.
// The caller keeps ownership and must close it.
func WithDB(db *sql.DB) Option {
	return func(cfg *appConfig) {
		cfg.db = db
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock overrides the time source used for new issues
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}

// WithIDGenerator overrides the identifier source used for new issues
func WithIDGenerator(newID func() string) Option {
	return func(cfg *appConfig) {
		cfg.newID = newID
	}
}

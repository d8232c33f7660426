// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database
const MemoryDSN = ":memory:"

// DefaultPath returns the default on-disk location of the issues database,
// $XDG_DATA_HOME/issuetracker/issues.db or ~/.local/share/issuetracker/issues.db
func DefaultPath() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "issuetracker", "issues.db"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "issuetracker", "issues.db"), nil
}

// InitDB opens the database named by dsn, configures it and runs migrations.
// An empty dsn selects DefaultPath.
func InitDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		dsn = path
	}

	inMemory := isMemoryDSN(dsn)
	if !inMemory && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if !inMemory {
		// WAL lets readers proceed while a create is being written
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("Failed to apply pragma", "pragma", pragma, "error", err)
			closeDB(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection, and :memory: databases
	// are private to the connection that created them.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed.
// The CHECK constraints mirror the service validation so that no write path
// can persist an issue without a title, a description or a known status.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS issues (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL CHECK (length(trim(title)) > 0),
			description TEXT NOT NULL CHECK (length(trim(description)) > 0),
			status TEXT NOT NULL DEFAULT 'open'
				CHECK (status IN ('open', 'in-progress', 'closed')),
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Listing is always newest first
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_issues_created_at
		ON issues(created_at DESC)
	`)
	return err
}

package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryDSN)
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// newTestIssue builds an issue with the given title created at the given time
func newTestIssue(id, title string, createdAt time.Time) *models.Issue {
	return &models.Issue{
		ID:          id,
		Title:       title,
		Description: title + " description",
		Status:      models.StatusOpen,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

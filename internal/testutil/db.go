package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/issuetracker/internal/database"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CreateTestIssue inserts an issue directly through the repository and returns it
func CreateTestIssue(t *testing.T, db *sql.DB, id, title string, status models.Status, createdAt time.Time) *models.Issue {
	t.Helper()
	issue, err := database.NewRepository(db).CreateIssue(context.Background(), &models.Issue{
		ID:          id,
		Title:       title,
		Description: "Test description",
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	})
	if err != nil {
		t.Fatalf("Failed to create test issue: %v", err)
	}
	return issue
}

// CountIssues returns the number of persisted issues
func CountIssues(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM issues").Scan(&count); err != nil {
		t.Fatalf("Failed to count issues: %v", err)
	}
	return count
}

// StepClock returns a clock that advances by step on every call,
// giving each created issue a distinct timestamp
func StepClock(start time.Time, step time.Duration) func() time.Time {
	current := start.Add(-step)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

// Fixture bundles the database and clock origin used by a test
type Fixture struct {
	DB    *sql.DB
	Start time.Time
}

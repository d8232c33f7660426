package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/issuetracker/internal/models"
)

const issueColumns = `id, title, description, status, created_at, updated_at`

// IssueRepo handles all issue-related database operations
type IssueRepo struct {
	db *sql.DB
}

// Create inserts the issue and returns the stored row.
// The caller assigns the ID and timestamps; the store only persists them.
func (r *IssueRepo) Create(ctx context.Context, issue *models.Issue) (*models.Issue, error) {
	stored := &models.Issue{}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO issues (`+issueColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			issue.ID, issue.Title, issue.Description, string(issue.Status),
			issue.CreatedAt.UTC(), issue.UpdatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert issue: %w", err)
		}

		row := tx.QueryRowContext(ctx,
			`SELECT `+issueColumns+` FROM issues WHERE id = ?`,
			issue.ID,
		)
		if err := scanIssue(row, stored); err != nil {
			return fmt.Errorf("failed to read back issue %s: %w", issue.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// List retrieves all issues, newest first.
// Insertion order breaks ties between identical creation times.
func (r *IssueRepo) List(ctx context.Context) ([]*models.Issue, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+issueColumns+`
		 FROM issues
		 ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query issues: %w", err)
	}
	defer func() { _ = rows.Close() }()

	issues := make([]*models.Issue, 0)
	for rows.Next() {
		issue := &models.Issue{}
		if err := scanIssue(rows, issue); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, issue)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return issues, nil
}

func scanIssue(row rowScanner, issue *models.Issue) error {
	var status string
	if err := row.Scan(
		&issue.ID, &issue.Title, &issue.Description, &status,
		&issue.CreatedAt, &issue.UpdatedAt,
	); err != nil {
		return err
	}
	issue.Status = models.Status(status)
	issue.CreatedAt = issue.CreatedAt.UTC()
	issue.UpdatedAt = issue.UpdatedAt.UTC()
	return nil
}

package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/issuetracker/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*IssueRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		IssueRepo: &IssueRepo{db: db},
	}
}

var _ DataStore = (*Repository)(nil)

// CreateIssue persists a new issue
func (r *Repository) CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error) {
	return r.IssueRepo.Create(ctx, issue)
}

// ListIssues returns every issue ordered newest first
func (r *Repository) ListIssues(ctx context.Context) ([]*models.Issue, error) {
	return r.IssueRepo.List(ctx)
}

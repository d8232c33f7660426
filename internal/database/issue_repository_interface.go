package database

import (
	"context"

	"github.com/thenoetrevino/issuetracker/internal/models"
)

// IssueReader defines read operations for issues.
type IssueReader interface {
	ListIssues(ctx context.Context) ([]*models.Issue, error)
}

// IssueWriter defines write operations for issues.
// There are no update or delete operations: issues are only ever created.
type IssueWriter interface {
	CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error)
}

// IssueRepository combines all issue operations.
type IssueRepository interface {
	IssueReader
	IssueWriter
}

package issue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/issuetracker/internal/database"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// Service defines all issue-related business operations
type Service interface {
	// Read operations
	ListIssues(ctx context.Context) ([]*models.Issue, error)

	// Write operations
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error)
}

// CreateIssueRequest encapsulates all data needed to create an issue.
// Status is optional: empty means models.DefaultStatus.
type CreateIssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

// Option configures the service
type Option func(*service)

// WithClock replaces the time source used for issue timestamps
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator replaces the issue ID generator
func WithIDGenerator(newID func() string) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// WithLogger sets the logger used for debug output.
// Store failures are returned, not logged; the caller decides.
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// NewService creates a new issue service
func NewService(repo database.DataStore, opts ...Option) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateIssue handles issue creation with validation and defaults
func (s *service) CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error) {
	issue, err := s.buildIssue(req)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.CreateIssue(ctx, issue)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	s.logger.Debug("issue created", "id", stored.ID, "status", stored.Status)
	return stored, nil
}

// ListIssues returns every issue, newest first
func (s *service) ListIssues(ctx context.Context) ([]*models.Issue, error) {
	issues, err := s.repo.ListIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}

// buildIssue validates the request and fills in the store-assigned fields
func (s *service) buildIssue(req CreateIssueRequest) (*models.Issue, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return &models.Issue{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

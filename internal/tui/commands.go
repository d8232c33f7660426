package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// issuesLoadedMsg carries the result of a list fetch
type issuesLoadedMsg struct {
	seq    int
	issues []*models.Issue
	err    error
}

// issueCreatedMsg carries the result of a create request
type issueCreatedMsg struct {
	issue *models.Issue
	err   error
}

func fetchIssues(ctx context.Context, api client.API, seq int) tea.Cmd {
	return func() tea.Msg {
		issues, err := api.ListIssues(ctx)
		return issuesLoadedMsg{seq: seq, issues: issues, err: err}
	}
}

func createIssue(ctx context.Context, api client.API, req client.CreateIssueRequest) tea.Cmd {
	return func() tea.Msg {
		issue, err := api.CreateIssue(ctx, req)
		return issueCreatedMsg{issue: issue, err: err}
	}
}

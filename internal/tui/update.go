package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/models"
	"github.com/thenoetrevino/issuetracker/internal/tui/forms"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.form.SetWidth(m.formFieldWidth())
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case issuesLoadedMsg:
		return m.handleIssuesLoaded(msg), nil

	case issueCreatedMsg:
		return m.handleIssueCreated(msg)

	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	// Cursor blink and other field messages
	if m.focus == focusForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleIssuesLoaded(msg issuesLoadedMsg) Model {
	if msg.seq != m.fetchSeq {
		return m
	}
	m.loading = false
	if msg.err != nil {
		m.logger.Error("failed to fetch issues", "error", msg.err)
		return m
	}

	m.issues = mergeRecent(msg.issues, m.recent)
	m.recent = nil
	if m.selected >= len(m.issues) {
		m.selected = max(len(m.issues)-1, 0)
	}
	return m
}

func (m Model) handleIssueCreated(msg issueCreatedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.logger.Error("failed to create issue", "error", msg.err)
		m.form.Resume()
		return m, nil
	}

	// The response is trusted verbatim; no re-fetch
	m.issues = append([]*models.Issue{msg.issue}, m.issues...)
	m.selected = 0
	if m.loading {
		m.recent = append([]*models.Issue{msg.issue}, m.recent...)
	}

	m.draft = newDraft()
	m.form = m.newForm()
	if m.focus != focusForm {
		m.form.Blur()
	}
	return m, nil
}

// updateForm handles key presses while the form has focus
func (m Model) updateForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.LeaveForm):
		m.focus = focusList
		m.form.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case msg.Code == tea.KeyEnter && m.form.OnLastField():
		return m.submit()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// submit sends the draft to the API. It does nothing unless both title and
// description are filled in, or while a previous create is in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting || m.form.State() != forms.StateInProgress {
		return m, nil
	}

	title := strings.TrimSpace(m.draft.Title)
	description := strings.TrimSpace(m.draft.Description)
	if title == "" || description == "" {
		return m, nil
	}

	m.submitting = true
	m.form.Submit()
	return m, createIssue(m.ctx, m.api, client.CreateIssueRequest{
		Title:       title,
		Description: description,
		Status:      m.draft.Status,
	})
}

// updateList handles key presses while the issue list has focus
func (m Model) updateList(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusForm):
		m.focus = focusForm
		return m, m.form.Focus()

	case key.Matches(msg, m.keys.NextIssue):
		if m.selected < len(m.issues)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.PrevIssue):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.fetchSeq++
		m.recent = nil
		return m, tea.Batch(m.spinner.Tick, fetchIssues(m.ctx, m.api, m.fetchSeq))
	}
	return m, nil
}

// mergeRecent puts recently created issues missing from a fetched list in
// front of it, so a list that was read before a create does not drop it
func mergeRecent(fetched, recent []*models.Issue) []*models.Issue {
	if len(recent) == 0 {
		return fetched
	}
	seen := make(map[string]bool, len(fetched))
	for _, issue := range fetched {
		seen[issue.ID] = true
	}
	merged := make([]*models.Issue, 0, len(recent)+len(fetched))
	for _, issue := range recent {
		if !seen[issue.ID] {
			merged = append(merged, issue)
		}
	}
	return append(merged, fetched...)
}

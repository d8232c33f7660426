// Package tui is the terminal Issue Tracker UI: a creation form beside the
// issue list, talking to the API through client.API.
package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
	"github.com/thenoetrevino/issuetracker/internal/tui/forms"
)

// focusArea is the part of the screen receiving key presses
type focusArea int

const (
	focusForm focusArea = iota
	focusList
)

// draft is the form's working copy of a new issue
type draft struct {
	Title       string
	Description string
	Status      string
}

func newDraft() *draft {
	return &draft{Status: string(models.DefaultStatus)}
}

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	api    client.API
	logger *slog.Logger
	now    func() time.Time

	keys   keyMap
	nav    config.KeyMappings
	styles Styles

	// issues are kept newest first
	issues   []*models.Issue
	selected int
	loading  bool

	// fetchSeq identifies the latest list fetch; recent holds issues created
	// while it was in flight, newest first
	fetchSeq int
	recent   []*models.Issue

	draft      *draft
	form       *forms.Form
	submitting bool
	focus      focusArea

	spinner spinner.Model
	help    help.Model
	width   int
	height  int
}

// Option configures a Model
type Option func(*Model)

// WithConfig applies key mappings and theme from cfg
func WithConfig(cfg *config.Config) Option {
	return func(m *Model) {
		if cfg == nil {
			return
		}
		m.nav = cfg.KeyMappings
		m.styles = newStyles(cfg.Theme)
	}
}

// WithLogger sets the logger for fetch and create failures
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock sets the time source for relative timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates the model. It starts in the loading state; Init issues the fetch.
func New(api client.API, opts ...Option) Model {
	defaults := config.Default()

	m := Model{
		ctx:      context.Background(),
		api:      api,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		nav:      defaults.KeyMappings,
		styles:   newStyles(defaults.Theme),
		issues:   []*models.Issue{},
		loading:  true,
		fetchSeq: 1,
		draft:    newDraft(),
		focus:    focusForm,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.keys = newKeyMap(m.nav)
	m.form = m.newForm()
	return m
}

// newForm builds the issue form bound to the current draft and focuses its first field
func (m Model) newForm() *forms.Form {
	options := make([]forms.Option, 0, len(models.ValidStatuses()))
	for _, status := range models.ValidStatuses() {
		options = append(options, forms.Option{Label: status.Label(), Value: string(status)})
	}

	form := forms.NewForm(
		forms.NewTextInput("title", "Title", "Short summary", &m.draft.Title),
		forms.NewTextArea("description", "Description", "What happened? Markdown is supported.", 0, &m.draft.Description),
		forms.NewSelect("status", "Status", options, &m.draft.Status),
	).WithNavigation(m.nav.NextField, m.nav.PrevField)
	form.SetWidth(m.formFieldWidth())
	form.Init()
	return form
}

// Init starts the spinner and fetches the issue list
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchIssues(m.ctx, m.api, m.fetchSeq),
	)
}

// Issues returns the displayed issues, newest first
func (m Model) Issues() []*models.Issue {
	return m.issues
}

// Loading reports whether a list fetch is in flight
func (m Model) Loading() bool {
	return m.loading
}

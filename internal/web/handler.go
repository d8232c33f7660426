// Package web serves the browser Issue Tracker UI: one server-rendered page
// with the creation form and the issue list, backed by the API client.
package web

import (
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// maxFormBytes caps the size of a submitted form
const maxFormBytes = 1 << 20

// Options configures the web handler.
type Options struct {
	API    client.API
	Theme  config.Theme
	Logger *slog.Logger
	Now    func() time.Time
}

// Handler serves the web client.
type Handler struct {
	api       client.API
	theme     config.Theme
	logger    *slog.Logger
	now       func() time.Time
	mux       *http.ServeMux
	templates *template.Template
}

// NewHandler creates a new web handler.
func NewHandler(opts Options) *Handler {
	handler := &Handler{
		api:       opts.API,
		theme:     opts.Theme,
		logger:    opts.Logger,
		now:       opts.Now,
		templates: newTemplates(),
	}
	if handler.logger == nil {
		handler.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if handler.now == nil {
		handler.now = time.Now
	}
	handler.theme.ApplyDefaults()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.handleIndex)
	mux.HandleFunc("POST /issues", handler.handleCreate)
	handler.mux = mux
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type selectOption struct {
	Value string
	Label string
}

type issueView struct {
	*models.Issue
	Age string
}

type formValues struct {
	Title       string
	Description string
	Status      string
}

type pageData struct {
	Issues        []issueView
	Form          formValues
	StatusOptions []selectOption
	Theme         config.Theme
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, formValues{Status: string(models.DefaultStatus)})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	values := formValues{
		Title:       strings.TrimSpace(r.PostForm.Get("title")),
		Description: strings.TrimSpace(r.PostForm.Get("description")),
		Status:      strings.TrimSpace(r.PostForm.Get("status")),
	}

	// Incomplete submissions never reach the API
	if values.Title == "" || values.Description == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_, err := h.api.CreateIssue(r.Context(), client.CreateIssueRequest{
		Title:       values.Title,
		Description: values.Description,
		Status:      values.Status,
	})
	if err != nil {
		h.logger.Error("failed to create issue", "error", err)
		h.render(w, r, values)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// render fetches the list and writes the page; a failed fetch renders an empty list
func (h *Handler) render(w http.ResponseWriter, r *http.Request, form formValues) {
	issues, err := h.api.ListIssues(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch issues", "error", err)
		issues = nil
	}

	now := h.now()
	views := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, issueView{
			Issue: issue,
			Age:   humanize.RelTime(issue.CreatedAt, now, "ago", "from now"),
		})
	}

	if form.Status == "" {
		form.Status = string(models.DefaultStatus)
	}

	data := pageData{
		Issues:        views,
		Form:          form,
		StatusOptions: statusOptions(),
		Theme:         h.theme,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "page", data); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}

func statusOptions() []selectOption {
	options := make([]selectOption, 0, len(models.ValidStatuses()))
	for _, status := range models.ValidStatuses() {
		options = append(options, selectOption{Value: string(status), Label: status.Label()})
	}
	return options
}

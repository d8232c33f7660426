package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	issueservice "github.com/thenoetrevino/issuetracker/internal/services/issue"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Messages returned to clients
const (
	msgRequired     = "Title and description are required"
	msgFetchFailed  = "Failed to fetch issues"
	msgCreateFailed = "Failed to create issue"
	msgInvalidJSON  = "Request body must be a JSON object"
	msgTooLarge     = "Request body too large"
)

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Message: "Backend is running"})
}

func (s *Server) handleListIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := s.app.IssueService.ListIssues(r.Context())
	if err != nil {
		s.logger.Error("list issues failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

func (s *Server) handleCreateIssue(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req issueservice.CreateIssueRequest
	// An empty body is treated like an empty object and fails validation below
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	issue, err := s.app.IssueService.CreateIssue(r.Context(), req)
	switch {
	case errors.Is(err, issueservice.ErrEmptyTitle), errors.Is(err, issueservice.ErrEmptyDescription):
		writeError(w, http.StatusBadRequest, msgRequired)
		return
	case issueservice.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Error("create issue failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	s.metrics.IncIssuesCreated()
	writeJSON(w, http.StatusCreated, issue)
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}

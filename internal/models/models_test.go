package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestValidStatuses(t *testing.T) {
	assert.Equal(t, []Status{StatusOpen, StatusInProgress, StatusClosed}, ValidStatuses())
}

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusOpen, true},
		{StatusInProgress, true},
		{StatusClosed, true},
		{"", false},
		{"done", false},
		{"in_progress", false},
		{"OPEN", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{"empty defaults to open", "", StatusOpen, false},
		{"blank defaults to open", "   ", StatusOpen, false},
		{"open", "open", StatusOpen, false},
		{"in-progress", "in-progress", StatusInProgress, false},
		{"closed uppercase", "CLOSED", StatusClosed, false},
		{"unknown", "wontfix", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidStatus))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Open", StatusOpen.Label())
	assert.Equal(t, "In progress", StatusInProgress.Label())
	assert.Equal(t, "Closed", StatusClosed.Label())
}

// ============================================================================
// Issue Tests
// ============================================================================

func TestIssue_JSONShape(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	issue := Issue{
		ID:          "abc",
		Title:       "Bug A",
		Description: "desc",
		Status:      StatusInProgress,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	data, err := json.Marshal(issue)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Len(t, fields, 6)
	for _, key := range []string{"id", "title", "description", "status", "createdAt", "updatedAt"} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "in-progress", fields["status"])
	assert.Equal(t, "2026-01-02T03:04:05Z", fields["createdAt"])
}

func TestErrors_Unique(t *testing.T) {
	assert.False(t, errors.Is(ErrEmptyTitle, ErrEmptyDescription))
	assert.False(t, errors.Is(ErrEmptyTitle, ErrInvalidStatus))
}

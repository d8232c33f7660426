package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

func TestStatusBadgeColours(t *testing.T) {
	theme := config.DefaultTheme()

	tests := []struct {
		status models.Status
		colour string
	}{
		{models.StatusOpen, "#2563EB"},       // blue
		{models.StatusInProgress, "#EAB308"}, // yellow
		{models.StatusClosed, "#16A34A"},     // green
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			fg, _ := theme.StatusColors(tt.status)
			assert.Equal(t, tt.colour, fg)
			assert.Contains(t, newStyles(theme).Badge(tt.status), tt.status.Label())
		})
	}
}

func TestRenderMarkdown_FallsBackToPlainText(t *testing.T) {
	out := renderMarkdown("**bold** text", 40, "monochrome")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "text")
}

func TestFirstLines(t *testing.T) {
	assert.Equal(t, "a\nb", firstLines("a\nb", 3))
	assert.Equal(t, "a\nb\nc\n...", firstLines("a\nb\nc\nd", 3))
}

// Package styles holds the lipgloss styles used by human-readable CLI output
package styles

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	SectionStyle  lipgloss.Style // For section headers like "Description"

	theme = config.DefaultTheme()
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes all CLI styles with the given theme
func Init(t config.Theme) {
	t.ApplyDefaults()
	theme = t

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Subtle))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Accent)).
		Bold(true).
		MarginTop(1)
}

// StatusBadge renders a status label in its theme colours
func StatusBadge(status models.Status) string {
	fg, bg := theme.StatusColors(status)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(status.Label())
}

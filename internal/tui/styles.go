package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// Styles holds every lipgloss style the view uses, derived from a theme
type Styles struct {
	theme config.Theme

	Header       lipgloss.Style
	Subtle       lipgloss.Style
	CardTitle    lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	FormBox      lipgloss.Style
	FocusedBox   lipgloss.Style
	Detail       lipgloss.Style
}

// newStyles builds the styles for a theme
func newStyles(theme config.Theme) Styles {
	accent := lipgloss.Color(theme.Accent)
	subtle := lipgloss.Color(theme.Subtle)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(subtle).
		Padding(0, 1)

	return Styles{
		theme: theme,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Title)).
			MarginBottom(1),
		Subtle:    lipgloss.NewStyle().Foreground(subtle),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Normal)),

		Card:         box,
		SelectedCard: box.BorderForeground(accent),
		FormBox:      box.Padding(1, 2),
		FocusedBox:   box.Padding(1, 2).BorderForeground(accent),
		Detail:       box.BorderForeground(accent),
	}
}

// Badge renders a status label in the status colours
func (s Styles) Badge(status models.Status) string {
	fg, bg := s.theme.StatusColors(status)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(status.Label())
}

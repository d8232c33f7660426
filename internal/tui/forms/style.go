package forms

import "charm.land/lipgloss/v2"

// TitleColor is the colour of field titles; focused titles use AccentColor
var (
	TitleColor  = lipgloss.Color("#737373")
	AccentColor = lipgloss.Color("#2563EB")
)

func renderTitle(title string, focused bool) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	if focused {
		style = style.Foreground(AccentColor)
	}
	return style.Render(title)
}

package styles

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/issuetracker/internal/config"
)

// HuhTheme creates a huh theme matching the configured colour scheme
func HuhTheme(theme config.Theme) huh.Theme {
	theme.ApplyDefaults()

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(theme.Accent)
		subtle := lipgloss.Color(theme.Subtle)
		normal := lipgloss.Color(theme.Normal)
		title := lipgloss.Color(theme.Title)
		errorColor := lipgloss.Color(theme.InProgressFg)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent)
		t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(normal)
		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)

		// Blurred fields keep the focused look without a border
		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}

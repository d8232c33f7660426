package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Option is one choice of a Select field
type Option struct {
	Label string
	Value string
}

// Select lets the user pick one of a fixed set of options with the arrow keys
type Select struct {
	key      string
	title    string
	options  []Option
	selected int
	focused  bool
	value    *string
}

// NewSelect creates a select field. The option matching *value is
// preselected, otherwise the first one.
func NewSelect(key, title string, options []Option, value *string) *Select {
	s := &Select{
		key:     key,
		title:   title,
		options: options,
		value:   value,
	}
	if value != nil {
		for i, opt := range options {
			if opt.Value == *value {
				s.selected = i
			}
		}
	}
	s.sync()
	return s
}

// Update handles messages
func (s *Select) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !s.focused || len(s.options) == 0 {
		return s, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "left", "h", "up", "k":
			s.selected = (s.selected - 1 + len(s.options)) % len(s.options)
		case "right", "l", "down", "j", "space", " ":
			s.selected = (s.selected + 1) % len(s.options)
		}
		s.sync()
	}
	return s, nil
}

func (s *Select) sync() {
	if s.value != nil && len(s.options) > 0 {
		*s.value = s.options[s.selected].Value
	}
}

// View renders the options on one line with the selection highlighted
func (s *Select) View() string {
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	if !s.focused {
		selectedStyle = lipgloss.NewStyle().Bold(true)
	}
	idle := lipgloss.NewStyle().Foreground(TitleColor)

	parts := make([]string, 0, len(s.options))
	for i, opt := range s.options {
		if i == s.selected {
			parts = append(parts, selectedStyle.Render("["+opt.Label+"]"))
		} else {
			parts = append(parts, idle.Render(" "+opt.Label+" "))
		}
	}
	return renderTitle(s.title, s.focused) + "\n" + strings.Join(parts, " ")
}

// Focus focuses the select
func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus
func (s *Select) Blur() {
	s.focused = false
}

// Focused returns whether the select is focused
func (s *Select) Focused() bool {
	return s.focused
}

// Key returns the field key
func (s *Select) Key() string {
	return s.key
}

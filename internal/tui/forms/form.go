package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// FormState represents the state of the form
type FormState int

const (
	// StateInProgress accepts input
	StateInProgress FormState = iota
	// StateCompleted ignores input until Resume is called
	StateCompleted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string
}

// Form manages a collection of fields
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
	nextKey      string
	prevKey      string
}

// NewForm creates a new form with the given fields.
// Tab and shift+tab move between fields unless WithNavigation overrides them.
func NewForm(fields ...Field) *Form {
	return &Form{
		fields:       fields,
		focusedIndex: 0,
		state:        StateInProgress,
		nextKey:      "tab",
		prevKey:      "shift+tab",
	}
}

// WithNavigation sets the keys that move focus forward and backward
func (f *Form) WithNavigation(next, prev string) *Form {
	if next != "" {
		f.nextKey = next
	}
	if prev != "" {
		f.prevKey = prev
	}
	return f
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[f.focusedIndex].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	// Handle keyboard messages
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case f.nextKey:
			return f, f.move(false)
		case f.prevKey:
			return f, f.move(true)
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// move shifts focus to the next or previous field, wrapping around
func (f *Form) move(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	// Blur current field
	f.fields[f.focusedIndex].Blur()

	// Move focus
	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	// Focus new field
	return f.fields[f.focusedIndex].Focus()
}

// View renders the form
func (f *Form) View() string {
	views := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		views = append(views, field.View())
	}
	return strings.Join(views, "\n\n")
}

// SetWidth resizes every field that has a width
func (f *Form) SetWidth(width int) {
	for _, field := range f.fields {
		if sized, ok := field.(interface{ SetWidth(int) }); ok {
			sized.SetWidth(width)
		}
	}
}

// Focus restores focus to the last focused field
func (f *Form) Focus() tea.Cmd {
	return f.Init()
}

// Blur removes focus from every field
func (f *Form) Blur() {
	for _, field := range f.fields {
		field.Blur()
	}
}

// Focused returns the field that currently has focus
func (f *Form) Focused() Field {
	if f.focusedIndex < len(f.fields) {
		return f.fields[f.focusedIndex]
	}
	return nil
}

// OnLastField reports whether focus is on the final field
func (f *Form) OnLastField() bool {
	return len(f.fields) > 0 && f.focusedIndex == len(f.fields)-1
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Submit marks the form as completed
func (f *Form) Submit() {
	f.state = StateCompleted
}

// Resume makes a completed form editable again
func (f *Form) Resume() {
	f.state = StateInProgress
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

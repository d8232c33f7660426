package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/issuetracker/internal/config"
)

// keyMap holds the bindings built from the configured key mappings
type keyMap struct {
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	LeaveForm key.Binding
	FocusForm key.Binding
	PrevIssue key.Binding
	NextIssue key.Binding
	Refresh   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys(km.SubmitForm), key.WithHelp(km.SubmitForm, "create")),
		NextField: key.NewBinding(key.WithKeys(km.NextField), key.WithHelp(km.NextField, "next field")),
		PrevField: key.NewBinding(key.WithKeys(km.PrevField), key.WithHelp(km.PrevField, "prev field")),
		LeaveForm: key.NewBinding(key.WithKeys(km.LeaveForm), key.WithHelp(km.LeaveForm, "browse issues")),
		FocusForm: key.NewBinding(key.WithKeys(km.FocusForm), key.WithHelp(km.FocusForm, "new issue")),
		PrevIssue: key.NewBinding(key.WithKeys(km.PrevIssue, "up"), key.WithHelp(km.PrevIssue, "up")),
		NextIssue: key.NewBinding(key.WithKeys(km.NextIssue, "down"), key.WithHelp(km.NextIssue, "down")),
		Refresh:   key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Quit:      key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// formHelp and listHelp implement help.KeyMap for the two focus areas
type formHelp struct{ keys keyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Submit, h.keys.NextField, h.keys.PrevField, h.keys.LeaveForm}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type listHelp struct{ keys keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.NextIssue, h.keys.PrevIssue, h.keys.FocusForm, h.keys.Refresh, h.keys.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

package config

// KeyMappings defines all configurable key bindings of the terminal UI
type KeyMappings struct {
	// Form
	SubmitForm string `yaml:"submit_form" toml:"submit_form"`
	NextField  string `yaml:"next_field" toml:"next_field"`
	PrevField  string `yaml:"prev_field" toml:"prev_field"`
	LeaveForm  string `yaml:"leave_form" toml:"leave_form"`
	FocusForm  string `yaml:"focus_form" toml:"focus_form"`

	// List
	PrevIssue string `yaml:"prev_issue" toml:"prev_issue"`
	NextIssue string `yaml:"next_issue" toml:"next_issue"`
	Refresh   string `yaml:"refresh" toml:"refresh"`

	// Other
	Quit string `yaml:"quit" toml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		SubmitForm: "ctrl+s",
		NextField:  "tab",
		PrevField:  "shift+tab",
		LeaveForm:  "esc",
		FocusForm:  "a",

		PrevIssue: "k",
		NextIssue: "j",
		Refresh:   "r",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(value *string, fallback string) {
		if *value == "" {
			*value = fallback
		}
	}

	fill(&k.SubmitForm, defaults.SubmitForm)
	fill(&k.NextField, defaults.NextField)
	fill(&k.PrevField, defaults.PrevField)
	fill(&k.LeaveForm, defaults.LeaveForm)
	fill(&k.FocusForm, defaults.FocusForm)
	fill(&k.PrevIssue, defaults.PrevIssue)
	fill(&k.NextIssue, defaults.NextIssue)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.Quit, defaults.Quit)
}

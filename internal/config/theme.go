package config

import (
	"regexp"
	"strconv"

	"github.com/thenoetrevino/issuetracker/internal/models"
)

var (
	hexColor   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	namedColor = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
)

// Theme defines all configurable colour values.
// Status colours come in foreground/background pairs for badges.
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset" toml:"preset"`

	// Primary accent colour (titles, focused fields, selection)
	Accent string `yaml:"accent" toml:"accent"`

	// Text colours
	Title  string `yaml:"title" toml:"title"`
	Subtle string `yaml:"subtle" toml:"subtle"`
	Normal string `yaml:"normal" toml:"normal"`

	// Status badges
	OpenFg       string `yaml:"open_fg" toml:"open_fg"`
	OpenBg       string `yaml:"open_bg" toml:"open_bg"`
	InProgressFg string `yaml:"in_progress_fg" toml:"in_progress_fg"`
	InProgressBg string `yaml:"in_progress_bg" toml:"in_progress_bg"`
	ClosedFg     string `yaml:"closed_fg" toml:"closed_fg"`
	ClosedBg     string `yaml:"closed_bg" toml:"closed_bg"`
}

// DefaultTheme returns the default colour scheme:
// open is blue, in-progress is yellow, closed is green.
func DefaultTheme() Theme {
	return Theme{
		Preset: "default",

		Accent: "#2563EB",

		Title:  "#F5F5F5",
		Subtle: "#737373",
		Normal: "#D4D4D4",

		OpenFg:       "#2563EB",
		OpenBg:       "#E0F2FE",
		InProgressFg: "#EAB308",
		InProgressBg: "#FEF9C3",
		ClosedFg:     "#16A34A",
		ClosedBg:     "#DCFCE7",
	}
}

// MonochromeTheme returns a black and white colour scheme
func MonochromeTheme() Theme {
	return Theme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		OpenFg:       "#FFFFFF",
		OpenBg:       "#3A3A3A",
		InProgressFg: "#FFFFFF",
		InProgressBg: "#585858",
		ClosedFg:     "#D0D0D0",
		ClosedBg:     "#1C1C1C",
	}
}

// GetPreset returns a preset theme by name
func GetPreset(name string) Theme {
	switch name {
	case "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// StatusColors returns the foreground and background colours for a status badge.
// Unknown statuses use the open colours.
func (t Theme) StatusColors(status models.Status) (fg, bg string) {
	switch status {
	case models.StatusInProgress:
		return t.InProgressFg, t.InProgressBg
	case models.StatusClosed:
		return t.ClosedFg, t.ClosedBg
	default:
		return t.OpenFg, t.OpenBg
	}
}

// MergeFrom overwrites colours that are set in other
func (t *Theme) MergeFrom(other Theme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&t.Preset, other.Preset)
	merge(&t.Accent, other.Accent)
	merge(&t.Title, other.Title)
	merge(&t.Subtle, other.Subtle)
	merge(&t.Normal, other.Normal)
	merge(&t.OpenFg, other.OpenFg)
	merge(&t.OpenBg, other.OpenBg)
	merge(&t.InProgressFg, other.InProgressFg)
	merge(&t.InProgressBg, other.InProgressBg)
	merge(&t.ClosedFg, other.ClosedFg)
	merge(&t.ClosedBg, other.ClosedBg)
}

// ApplyDefaults fills in missing colours using the preset as base.
// Values that are not valid colours are replaced by the preset's.
func (t *Theme) ApplyDefaults() {
	custom := *t
	for _, c := range custom.colors() {
		if !ValidColor(*c) {
			*c = ""
		}
	}
	*t = GetPreset(custom.Preset)
	t.MergeFrom(custom)
}

// ValidColor reports whether s is a #RGB or #RRGGBB hex colour, an ANSI
// colour number (0-255) or a plain colour name
func ValidColor(s string) bool {
	if hexColor.MatchString(s) || namedColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

func (t *Theme) colors() []*string {
	return []*string{
		&t.Accent, &t.Title, &t.Subtle, &t.Normal,
		&t.OpenFg, &t.OpenBg,
		&t.InProgressFg, &t.InProgressBg,
		&t.ClosedFg, &t.ClosedBg,
	}
}

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

func TestStatusBadge_UsesLabel(t *testing.T) {
	Init(config.DefaultTheme())

	assert.Contains(t, StatusBadge(models.StatusInProgress), "In progress")
	assert.Contains(t, StatusBadge(models.StatusClosed), "Closed")
}

func TestInit_InvalidColoursFallBack(t *testing.T) {
	t.Cleanup(func() { Init(config.DefaultTheme()) })

	Init(config.Theme{Accent: "not a colour"})

	assert.Equal(t, config.DefaultTheme().Accent, theme.Accent)
}

func TestHuhTheme(t *testing.T) {
	assert.NotNil(t, HuhTheme(config.MonochromeTheme()))
}

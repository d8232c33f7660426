package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// Cache Glamour renderers by width and preset to avoid expensive re-creation
var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]*glamour.TermRenderer{}
)

type rendererKey struct {
	width  int
	preset string
}

// getRenderer returns a cached renderer. Styles are fixed rather than
// detected because detection queries the terminal Bubble Tea owns.
func getRenderer(width int, preset string) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	k := rendererKey{width: width, preset: preset}
	if cached, ok := renderers[k]; ok {
		return cached
	}

	var style ansi.StyleConfig
	if preset == "monochrome" {
		style = styles.NoTTYStyleConfig
	} else {
		style = styles.DarkStyleConfig
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[k] = renderer
	return renderer
}

// renderMarkdown renders text as Markdown, falling back to the raw text
func renderMarkdown(text string, width int, preset string) string {
	if width < 10 {
		width = 10
	}
	renderer := getRenderer(width, preset)
	if renderer == nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}

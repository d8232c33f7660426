package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/issuetracker/internal/models"
)

const (
	defaultWidth = 100
	// wideLayout is the width at which form and list sit side by side
	wideLayout = 90
	formWidth  = 44
)

// layout returns the outer widths of the form box and the issue list
func (m Model) layout() (form, list int, wide bool) {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	if width >= wideLayout {
		return formWidth, width - formWidth - 4, true
	}
	return width - 2, width - 2, false
}

// formFieldWidth is the space left for fields inside the form box
func (m Model) formFieldWidth() int {
	form, _, _ := m.layout()
	return max(form-m.styles.FormBox.GetHorizontalFrameSize(), 10)
}

// View renders the whole screen in the alternate screen buffer
func (m Model) View() tea.View {
	view := tea.NewView(m.render())
	view.AltScreen = true
	return view
}

func (m Model) render() string {
	header := m.styles.Header.Render("Issue Tracker")

	formW, listW, wide := m.layout()
	var body string
	if wide {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewForm(formW),
			"  ",
			m.viewList(listW),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.viewForm(formW),
			m.viewList(listW),
		)
	}

	var footer string
	if m.focus == focusForm {
		footer = m.help.View(formHelp{m.keys})
	} else {
		footer = m.help.View(listHelp{m.keys})
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, "", footer)
}

// viewForm renders the creation form box
func (m Model) viewForm(width int) string {
	box := m.styles.FormBox
	if m.focus == focusForm {
		box = m.styles.FocusedBox
	}

	content := m.form.View()
	if m.submitting {
		content += "\n\n" + m.styles.Subtle.Render("Creating...")
	}
	return box.Width(width).Render(content)
}

// viewList renders the loading state, the empty state or the issue cards
func (m Model) viewList(width int) string {
	if m.loading {
		return m.spinner.View() + " Loading..."
	}
	if len(m.issues) == 0 {
		return m.styles.Subtle.Render("No issues yet.")
	}

	cards := make([]string, 0, len(m.issues)+1)
	for i, issue := range m.issues {
		cards = append(cards, m.viewCard(issue, width, m.focus == focusList && i == m.selected))
	}

	if m.focus == focusList && m.selected < len(m.issues) {
		cards = append(cards, m.viewDetail(m.issues[m.selected], width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// viewCard renders one issue: title, badge, wrapped description and age
func (m Model) viewCard(issue *models.Issue, width int, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	inner := max(width-style.GetHorizontalFrameSize(), 10)

	title := m.styles.CardTitle.Render(issue.Title) + " " + m.styles.Badge(issue.Status)
	description := wordwrap.String(firstLines(issue.Description, 3), inner)
	age := m.styles.Subtle.Render("created " + humanize.RelTime(issue.CreatedAt, m.now(), "ago", "from now"))

	return style.Width(width).Render(strings.Join([]string{title, description, age}, "\n"))
}

// viewDetail renders the selected issue's description as Markdown
func (m Model) viewDetail(issue *models.Issue, width int) string {
	inner := max(width-m.styles.Detail.GetHorizontalFrameSize(), 10)
	return m.styles.Detail.Width(width).Render(renderMarkdown(issue.Description, inner, m.styles.theme.Preset))
}

// firstLines truncates text to n lines for the card preview
func firstLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= n {
		return text
	}
	return strings.Join(lines[:n], "\n") + "\n..."
}

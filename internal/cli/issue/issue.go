// Package issue holds all cli commands related to issues
// e.g., issuetracker issue ...
package issue

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/issuetracker/internal/cli/styles"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// IssueCmd returns the issue parent command
func IssueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "List and create issues through the API",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())

	return cmd
}

// issueList is the result of issue list
type issueList []*models.Issue

// GetIDs implements quiet mode output
func (l issueList) GetIDs() []string {
	ids := make([]string, 0, len(l))
	for _, issue := range l {
		ids = append(ids, issue.ID)
	}
	return ids
}

// Render implements human-readable output
func (l issueList) Render() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No issues yet.")
	}

	lines := make([]string, 0, len(l))
	for _, issue := range l {
		lines = append(lines,
			styles.TitleStyle.Render(issue.Title)+" "+styles.StatusBadge(issue.Status)+"\n  "+
				styles.SubtitleStyle.Render(issue.ID+" · created "+humanize.Time(issue.CreatedAt)))
	}
	return strings.Join(lines, "\n")
}

// issueResult is the result of issue create
type issueResult struct {
	*models.Issue
}

// Render implements human-readable output
func (r issueResult) Render() string {
	body := strings.Join([]string{
		styles.TitleStyle.Render(r.Title) + " " + styles.StatusBadge(r.Status),
		styles.SubtitleStyle.Render(r.ID),
		styles.SectionStyle.Render("Description"),
		r.Description,
		styles.SubtitleStyle.Render("created " + humanize.Time(r.CreatedAt)),
	}, "\n")
	return "Created issue\n" + styles.CardStyle.Render(body)
}

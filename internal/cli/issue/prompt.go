package issue

import (
	"errors"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/issuetracker/internal/cli/styles"
	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// promptIssue fills req from an interactive form. Tests replace it.
var promptIssue = runIssueForm

func runIssueForm(req *client.CreateIssueRequest, theme config.Theme) error {
	if req.Status == "" {
		req.Status = string(models.DefaultStatus)
	}

	options := make([]huh.Option[string], 0, len(models.ValidStatuses()))
	for _, status := range models.ValidStatuses() {
		options = append(options, huh.NewOption(status.Label(), string(status)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&req.Title).
				Validate(required("title")),
			huh.NewText().
				Title("Description").
				Value(&req.Description).
				Validate(required("description")),
			huh.NewSelect[string]().
				Title("Status").
				Options(options...).
				Value(&req.Status),
		),
	).WithTheme(styles.HuhTheme(theme))
	return form.Run()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

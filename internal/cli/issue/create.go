package issue

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/issuetracker/internal/cli"
	"github.com/thenoetrevino/issuetracker/internal/cli/handler"
	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

// CreateCmd returns the issue create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new issue",
		Long: `Create a new issue with a title, a description and an optional status.
Without flags on an interactive terminal, a form asks for the fields.

Examples:
  # Create issue (human-readable output)
  issuetracker issue create --title="Login fails" --description="500 on submit"

  # Start it in progress
  issuetracker issue create --title="Login fails" --description="500 on submit" --status=in-progress

  # Quiet mode for bash capture
  ISSUE_ID=$(issuetracker issue create --title="Bug" --description="Details" --quiet)
`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cli.AnnotationReportsErrors: "true"},
		RunE:        handler.Command(&createHandler{}, parseCreateFlags),
	}

	cmd.Flags().String("title", "", "Issue title")
	cmd.Flags().String("description", "", "Issue description")
	cmd.Flags().String("status", "", "Initial status: open, in-progress or closed (default open)")

	// Agent-friendly flags
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

// ErrMissingFields is returned when neither flags nor a terminal supply the issue
var ErrMissingFields = errors.New("--title and --description are required when not running interactively")

// createHandler implements handler.Handler for issue creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	req := client.CreateIssueRequest{
		Title:       args.GetString("title", ""),
		Description: args.GetString("description", ""),
		Status:      args.GetString("status", ""),
	}

	if !args.Has("title") && !args.Has("description") {
		structured := args.GetBool("json") || args.GetBool("quiet")
		if !args.CLI.Interactive || structured {
			return nil, cli.WithExitCode(cli.ExitUsage, ErrMissingFields)
		}
		theme := config.DefaultTheme()
		if args.CLI.Config != nil {
			theme = args.CLI.Config.Theme
		}
		if err := promptIssue(&req, theme); err != nil {
			return nil, cli.WithExitCode(cli.ExitError, fmt.Errorf("prompt: %w", err))
		}
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		return nil, cli.WithExitCode(cli.ExitValidation, err)
	}
	req.Status = string(status)

	issue, err := args.CLI.API.CreateIssue(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("issue creation error: %w", err)
	}
	return issueResult{Issue: issue}, nil
}

func parseCreateFlags(cmd *cobra.Command) error {
	status, _ := cmd.Flags().GetString("status")
	if cmd.Flags().Changed("status") && status == "" {
		return fmt.Errorf("--status must not be empty")
	}
	return nil
}

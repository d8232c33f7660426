package issue

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/issuetracker/internal/cli"
	"github.com/thenoetrevino/issuetracker/internal/cli/handler"
)

// ListCmd returns the issue list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues, newest first",
		Long: `List all issues, newest first.

Examples:
  # Human-readable list
  issuetracker issue list

  # JSON output for agents
  issuetracker issue list --json

  # Quiet mode (one ID per line)
  issuetracker issue list --quiet
`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cli.AnnotationReportsErrors: "true"},
		RunE:        handler.Command(&listHandler{}, func(*cobra.Command) error { return nil }),
	}

	// Agent-friendly flags
	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

// listHandler implements handler.Handler for listing issues
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	issues, err := args.CLI.API.ListIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issueList(issues), nil
}

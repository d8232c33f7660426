package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/issuetracker/internal/cli"
	"github.com/thenoetrevino/issuetracker/internal/cli/issue"
	"github.com/thenoetrevino/issuetracker/internal/cli/styles"
	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/logging"
)

// NewRootCmd builds the issuetracker command tree
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "issuetracker",
		Short: "Issuetracker - a minimal issue tracker",
		Long: `Issuetracker stores issues behind a small HTTP/JSON API and offers a
terminal UI, a browser UI and CLI commands on top of it.

Run without a subcommand to open the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return cli.WithExitCode(cli.ExitUsage, err)
			}
			if err := logging.Init(os.Stderr, cfg.Log.Level); err != nil {
				return cli.WithExitCode(cli.ExitUsage, err)
			}
			styles.Init(cfg.Theme)

			cmd.SetContext(cli.WithCLI(cmd.Context(), cli.NewCLI(cfg)))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, "")
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (.yaml or .toml; default $XDG_CONFIG_HOME/issuetracker/config.yaml)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(issue.IssueCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	rootCmd := NewRootCmd()
	executed, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// Errors already reported by the issue commands carry an exit code;
	// anything else (unknown command, bad flags, startup failure) is printed here.
	code := cli.ExitCode(err)
	if !isReported(executed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if isUsageError(err) && code == cli.ExitError {
		code = cli.ExitUsage
	}
	return code
}

// isReported reports whether the command already printed its own error
func isReported(cmd *cobra.Command) bool {
	return cmd != nil && cmd.Annotations[cli.AnnotationReportsErrors] == "true"
}

// isUsageError recognises cobra's argument and flag validation errors
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "accepts ", "required flag", "if any flags in the group"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

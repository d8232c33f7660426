package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/issuetracker/internal/cli"
	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/logging"
	"github.com/thenoetrevino/issuetracker/internal/tui"
)

func tuiCmd() *cobra.Command {
	var apiBase string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, apiBase)
		},
	}

	cmd.Flags().StringVar(&apiBase, "api", "", "API base URL (env API_BASE, default http://localhost:4000/api)")

	return cmd
}

// runTUI starts the terminal UI. Logs go to a file because the UI owns the terminal.
func runTUI(cmd *cobra.Command, apiBase string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	cfg := c.Config

	if apiBase == "" {
		apiBase = cfg.Client.APIBase
	}

	logPath := cfg.Log.File
	if logPath == "" {
		if logPath, err = logging.DefaultTUILogPath(); err != nil {
			return err
		}
	}
	logFile, err := logging.InitFile(logPath, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	api := client.New(apiBase, client.WithTimeout(cfg.Client.Timeout))
	model := tui.New(api, tui.WithConfig(cfg), tui.WithLogger(slog.Default()))

	slog.Info("terminal UI starting", "api", apiBase)
	return tui.Run(cmd.Context(), model)
}

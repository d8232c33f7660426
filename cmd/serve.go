package cmd

import (
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/issuetracker/internal/app"
	"github.com/thenoetrevino/issuetracker/internal/cli"
	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/logging"
	"github.com/thenoetrevino/issuetracker/internal/server"
	"github.com/thenoetrevino/issuetracker/internal/web"
)

func serveCmd() *cobra.Command {
	var (
		port int
		dsn  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the issue API and the browser UI",
		Long: `Run the Issue Store API under /api and the browser UI at /.

The server stops gracefully on SIGINT or SIGTERM. Failing to open the
database is fatal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return err
			}

			cfg := c.Config
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("db") {
				cfg.Database.DSN = dsn
			}

			if cfg.Log.File != "" {
				logFile, err := logging.InitFile(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					return err
				}
				defer func() { _ = logFile.Close() }()
			}

			return runServer(cmd, cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "port to listen on (env PORT)")
	cmd.Flags().StringVar(&dsn, "db", "", "SQLite database path or URI (env DATABASE_URL)")

	return cmd
}

func runServer(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()

	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		slog.Error("failed to initialize store", "error", err)
		return cli.WithExitCode(cli.ExitError, err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	ui := web.NewHandler(web.Options{
		API:    client.New(selfAPIBase(cfg.Server), client.WithTimeout(cfg.Client.Timeout)),
		Theme:  cfg.Theme,
		Logger: slog.Default(),
	})
	srv := server.New(application, server.WithUI(ui))

	slog.Info("issuetracker server starting", "addr", cfg.Server.Addr(), "pid", os.Getpid())

	// Start blocks until shutdown
	if err := srv.Start(ctx); err != nil {
		slog.Error("server error", "error", err)
		return cli.WithExitCode(cli.ExitError, err)
	}

	slog.Info("issuetracker server shut down gracefully")
	return nil
}

// selfAPIBase is the API root the browser UI uses to reach this process
func selfAPIBase(s config.ServerConfig) string {
	host := s.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(s.Port)) + "/api"
}

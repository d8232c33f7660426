// Package cli holds the shared plumbing of the issuetracker commands: the
// per-invocation context, output formatting and exit codes.
package cli

import (
	"context"
	"errors"
	"os"

	"golang.org/x/term"

	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	Config *config.Config
	API    client.API

	// Interactive is true when stdin is a terminal and prompts may be shown
	Interactive bool
}

// NewCLI builds the command context from a loaded configuration
func NewCLI(cfg *config.Config) *CLI {
	return &CLI{
		Config:      cfg,
		API:         client.New(cfg.Client.APIBase, client.WithTimeout(cfg.Client.Timeout)),
		Interactive: IsTerminal(os.Stdin),
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type cliKey struct{}

// ErrNoCLI is returned when a command runs without a CLI in its context
var ErrNoCLI = errors.New("cli context not initialized")

// WithCLI stores c in ctx
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}

// AnnotationReportsErrors marks commands that print their own errors
const AnnotationReportsErrors = "issuetracker/reports-errors"

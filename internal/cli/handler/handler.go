// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thenoetrevino/issuetracker/internal/cli"
	"github.com/thenoetrevino/issuetracker/internal/client"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	CLI   *cli.CLI
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
	cmd.MarkFlagsMutuallyExclusive("json", "quiet")
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Get formatter from flags
		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{
			JSON:   jsonOutput,
			Quiet:  quietMode,
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
		}

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			report(formatter, "USAGE_ERROR", err)
			return cli.WithExitCode(cli.ExitUsage, err)
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			report(formatter, "INITIALIZATION_ERROR", err)
			return cli.WithExitCode(cli.ExitError, err)
		}

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			CLI:   cliInstance,
		}

		// Execute handler
		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			return classify(formatter, err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// classify reports err and attaches the matching exit code
func classify(formatter *cli.OutputFormatter, err error) error {
	var coded *cli.CodedError
	switch {
	case errors.As(err, &coded):
		report(formatter, "ERROR", err)
		return err
	case client.IsClientError(err):
		report(formatter, "VALIDATION_ERROR", err)
		return cli.WithExitCode(cli.ExitValidation, err)
	default:
		report(formatter, "API_ERROR", err)
		return cli.WithExitCode(cli.ExitError, err)
	}
}

func report(formatter *cli.OutputFormatter, code string, err error) {
	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		// Get the value based on flag type
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Has reports whether a flag was explicitly set
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}


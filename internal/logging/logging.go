// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Init initializes the logging system, writing text logs to w at the given level.
// Uses text format for human readability.
func Init(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})

	slog.SetDefault(slog.New(handler))

	// Redirect standard log package output to the same writer
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags) // Include timestamp

	return nil
}

// InitFile opens path in append mode and initializes logging into it.
// The caller closes the returned file on exit.
func InitFile(path, level string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	if err := Init(file, level); err != nil {
		_ = file.Close()
		return nil, err
	}
	return file, nil
}

// DefaultTUILogPath returns $XDG_STATE_HOME/issuetracker/tui.log,
// falling back to ~/.local/state.
func DefaultTUILogPath() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "issuetracker", "tui.log"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", "issuetracker", "tui.log"), nil
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: API unreachable, server errors, store failures at startup,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown flags,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitValidation indicates a validation error.
	// Use for: Input the API rejected with a 4xx response, or an invalid status.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so that ExitCode reports code
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

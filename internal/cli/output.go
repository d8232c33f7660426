package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to stdout and stderr
	Out    io.Writer
	ErrOut io.Writer
}

// Renderer is implemented by results with a human-readable form
type Renderer interface {
	Render() string
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract IDs if possible
		switch v := data.(type) {
		case interface{ GetID() string }:
			_, err := fmt.Fprintln(f.out(), v.GetID())
			return err
		case interface{ GetIDs() []string }:
			for _, id := range v.GetIDs() {
				if _, err := fmt.Fprintln(f.out(), id); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if r, ok := data.(Renderer); ok {
		_, err := fmt.Fprintln(f.out(), r.Render())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

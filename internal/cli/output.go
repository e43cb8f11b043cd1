package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for nzgen commands.
const (
	ExitSuccess      = 0 // generation/check succeeded
	ExitFailure      = 1 // validation diagnostics (zero value, non-constant, ...)
	ExitCommandError = 2 // command error (missing directory, bad config, ...)
)

// ExitError carries a process exit code out of a cobra RunE function.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // verbose/diagnostic output, kept off stdout so JSON stays parseable
	Verbose   bool
}

// Response is the JSON envelope every command emits in --format json.
type Response struct {
	Status      string       `json:"status"` // "ok" or "error"
	Data        any          `json:"data,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Diagnostic is one build-time error in JSON output.
type Diagnostic struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Position string `json:"position,omitempty"`
}

// Success emits a success payload in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(Response{Status: "ok", Data: data})
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Fail emits diagnostics in the configured format.
func (f *OutputFormatter) Fail(diags []Diagnostic, data any) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(Response{Status: "error", Data: data, Diagnostics: diags})
	}

	for _, d := range diags {
		if d.Position != "" {
			fmt.Fprintf(f.Writer, "%s\n", d.Position)
		}
		fmt.Fprintf(f.Writer, "  %s: %s\n\n", d.Code, d.Message)
	}
	return nil
}

// VerboseLog writes a line only in verbose mode, to the diagnostic writer
// when one is configured.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/tabquery/internal/config"
	"github.com/roach88/tabquery/internal/filtertype"
	"github.com/roach88/tabquery/internal/querykey"
	"github.com/roach88/tabquery/internal/transport"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The server rejected the request or a filter failed validation
	ExitCommandError = 2 // Bad flags, unreadable config, unreachable server
)

// CLI error codes. Domain errors keep their own codes (E1xx keys, E2xx
// filters, E3xx config).
const (
	ErrCodeGeneric     = "E001"
	ErrCodeInvalidArgs = "E002"
	ErrCodeRequest     = "E401" // server answered with a non-2xx status
	ErrCodeUnreachable = "E402" // no response received
	ErrCodeInvalidKey  = "E101"
)

// ExitError represents an error with a specific exit code.
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

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostics and logs; defaults to Writer
	Verbose   bool
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status    string    `json:"status"` // "ok" or "error"
	Data      any       `json:"data,omitempty"`
	Error     *CLIError `json:"error,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success outputs a successful result. In text mode text renders it; a nil
// text prints data with fmt.
func (f *OutputFormatter) Success(data any, text func(io.Writer) error) error {
	return f.SuccessWithRequestID("", data, text)
}

// SuccessWithRequestID is Success with the server request ID attached to
// the JSON envelope.
func (f *OutputFormatter) SuccessWithRequestID(requestID string, data any, text func(io.Writer) error) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status:    "ok",
			Data:      data,
			RequestID: requestID,
		})
	}
	if text != nil {
		return text(f.Writer)
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err and returns the ExitError the command should return.
// Known error types keep their codes and details.
func (f *OutputFormatter) Fail(err error) error {
	code, exit, details := classify(err)
	_ = f.Error(code, err.Error(), details)
	return WrapExitError(exit, code, err)
}

func classify(err error) (code string, exit int, details any) {
	var (
		argErr *querykey.InvalidArgumentError
		valErr *filtertype.ValidationError
		cfgErr *config.Error
		reqErr *transport.RequestError
		exErr  *ExitError
	)
	switch {
	case errors.As(err, &exErr):
		return ErrCodeInvalidArgs, exErr.Code, nil
	case errors.As(err, &argErr):
		return ErrCodeInvalidKey, ExitCommandError, argErr
	case errors.As(err, &valErr):
		return valErr.Code, ExitFailure, valErr
	case errors.As(err, &cfgErr):
		return cfgErr.Code, ExitCommandError, nil
	case errors.As(err, &reqErr):
		if reqErr.Status == 0 {
			return ErrCodeUnreachable, ExitCommandError, nil
		}
		return ErrCodeRequest, ExitFailure, map[string]any{
			"status":          reqErr.Status,
			"exception":       reqErr.Exception,
			"exception_class": reqErr.ExceptionClass,
			"request_id":      reqErr.RequestID,
		}
	default:
		return ErrCodeGeneric, ExitCommandError, nil
	}
}

// VerboseLog outputs a message only if verbose mode is enabled.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

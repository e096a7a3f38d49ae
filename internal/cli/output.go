package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/smartstock/internal/backup"
	"github.com/roach88/smartstock/internal/inventory"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Rejected input (validation, unknown id, category in use, bad backup)
	ExitCommandError = 2 // Command error (config, database, file IO)
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeConfig          = "E002" // Invalid configuration
	ErrCodeStorage         = "E003" // Database open/read/write failed
	ErrCodeInvalidInput    = "E004" // Rejected field value
	ErrCodeNotFound        = "E005" // Unknown category, product or debt
	ErrCodeCategoryInUse   = "E006" // Category still referenced by products
	ErrCodeInvalidDocument = "E007" // Backup document rejected
	ErrCodeFileIO          = "E008" // Backup file read/write error
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
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
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// IsJSON reports whether output is the JSON envelope.
func (f *OutputFormatter) IsJSON() bool {
	return f.Format == "json"
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.IsJSON() {
		enc := json.NewEncoder(f.Writer)
		enc.SetEscapeHTML(false)
		return enc.Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.IsJSON() {
		enc := json.NewEncoder(f.Writer)
		enc.SetEscapeHTML(false)
		return enc.Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// Fail reports err in the configured format and returns the ExitError the
// command should return.
func (f *OutputFormatter) Fail(message string, err error) error {
	code, exit, details := classifyError(err)
	_ = f.Error(code, fmt.Sprintf("%s: %v", message, err), details)
	return WrapExitError(exit, message, err)
}

// errNotFound marks a lookup by id that matched nothing.
var errNotFound = errors.New("not found")

// configError wraps configuration failures so they classify as E002.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// storageError wraps store failures so they classify as E003.
type storageError struct{ err error }

func (e *storageError) Error() string { return e.err.Error() }
func (e *storageError) Unwrap() error { return e.err }

// fileError wraps backup file IO so it classifies as E008.
type fileError struct{ err error }

func (e *fileError) Error() string { return e.err.Error() }
func (e *fileError) Unwrap() error { return e.err }

// classifyError maps err to an error code, exit code and optional details.
func classifyError(err error) (code string, exit int, details any) {
	var (
		inUse   *inventory.CategoryInUseError
		cfgErr  *configError
		storErr *storageError
		fileErr *fileError
	)
	switch {
	case errors.As(err, &inUse):
		return ErrCodeCategoryInUse, ExitFailure, map[string]any{
			"categoryId": inUse.CategoryID,
			"products":   inUse.Count,
			"sample":     inUse.Sample,
		}
	case errors.Is(err, backup.ErrInvalidDocument):
		return ErrCodeInvalidDocument, ExitFailure, nil
	case errors.Is(err, errNotFound),
		errors.Is(err, inventory.ErrUnknownCategory),
		errors.Is(err, inventory.ErrUnknownProduct):
		return ErrCodeNotFound, ExitFailure, nil
	case errors.Is(err, inventory.ErrEmptyName),
		errors.Is(err, inventory.ErrInvalidPrice),
		errors.Is(err, inventory.ErrInvalidAmount),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrDebtCategory),
		errors.Is(err, inventory.ErrDuplicateID),
		errors.Is(err, errInvalidArgument):
		return ErrCodeInvalidInput, ExitFailure, nil
	case errors.As(err, &cfgErr):
		return ErrCodeConfig, ExitCommandError, nil
	case errors.As(err, &fileErr):
		return ErrCodeFileIO, ExitCommandError, nil
	case errors.As(err, &storErr):
		return ErrCodeStorage, ExitCommandError, nil
	default:
		return ErrCodeGeneric, ExitCommandError, nil
	}
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage failures, quota errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a corrupted task collection, unreadable stdin.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty titles, unknown statuses, moves past the last column.
	ExitValidation = 5
)

// CommandError is returned by commands that already reported their failure and
// want the process to end with Code
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	var exitErr *CommandError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	default:
		return ExitCodeFor(err)
	}
}

// ExitCodeFor classifies a domain error
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, taskservice.ErrTaskNotFound),
		errors.Is(err, storage.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, storage.ErrCorruptPayload):
		return ExitDataErr
	case errors.Is(err, taskservice.ErrEmptyTitle),
		errors.Is(err, taskservice.ErrEmptyDescription),
		errors.Is(err, taskservice.ErrEmptyStatus),
		errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, taskservice.ErrTaskAlreadyInTargetColumn),
		errors.Is(err, models.ErrUnknownStatus),
		errors.Is(err, models.ErrAlreadyFirstColumn),
		errors.Is(err, models.ErrAlreadyLastColumn):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCodeFor returns the machine-readable code reported in JSON errors
func ErrorCodeFor(err error) string {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound), errors.Is(err, storage.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, storage.ErrCorruptPayload):
		return "CORRUPT_PAYLOAD"
	case errors.Is(err, storage.ErrQuotaExceeded):
		return "QUOTA_EXCEEDED"
	case errors.Is(err, storage.ErrStorageUnavailable):
		return "STORAGE_UNAVAILABLE"
	case errors.Is(err, models.ErrUnknownStatus):
		return "INVALID_STATUS"
	case errors.Is(err, models.ErrAlreadyFirstColumn):
		return "NO_PREV_COLUMN"
	case errors.Is(err, models.ErrAlreadyLastColumn):
		return "NO_NEXT_COLUMN"
	case ExitCodeFor(err) == ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// UsageError wraps a command-line parsing error so it exits with ExitUsage
func UsageError(err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Code: ExitUsage, Err: err}
}

// ExactArgs is cobra.ExactArgs reporting failures as usage errors
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return UsageError(cobra.ExactArgs(n)(cmd, args))
	}
}

// NoArgs is cobra.NoArgs reporting failures as usage errors
func NoArgs(cmd *cobra.Command, args []string) error {
	return UsageError(cobra.NoArgs(cmd, args))
}

// MaximumNArgs is cobra.MaximumNArgs reporting failures as usage errors
func MaximumNArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return UsageError(cobra.MaximumNArgs(n)(cmd, args))
	}
}

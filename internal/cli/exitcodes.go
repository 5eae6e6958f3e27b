package cli

import (
	"encoding/json"
	"errors"

	"github.com/thenoetrevino/novi/internal/commands"
	"github.com/thenoetrevino/novi/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, constraint violations, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown invoke commands.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: A bridge socket that does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid JSON input or payload files that cannot be read.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty station codes and other input rejected before the store.
	ExitValidation = 5
)

// ExitCodeFor maps an error returned by a command onto an exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		usageErr  *UsageError
	)

	switch {
	case errors.As(err, &usageErr), errors.Is(err, commands.ErrUnknownCommand):
		return ExitUsage
	case errors.Is(err, ErrSocketNotFound):
		return ExitNotFound
	case errors.Is(err, commands.ErrInvalidArgs), errors.Is(err, ErrInvalidJSON),
		errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return ExitDataErr
	case errors.Is(err, models.ErrEmptyStationCode):
		return ExitValidation
	default:
		return ExitError
	}
}

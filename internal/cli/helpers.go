package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thenoetrevino/novi/internal/commands"
)

var (
	// ErrSocketNotFound is returned when no bridge is listening at the socket path
	ErrSocketNotFound = errors.New("bridge socket not found")

	// ErrInvalidJSON is returned when a payload file or stdin is not JSON
	ErrInvalidJSON = errors.New("input is not valid JSON")
)

// UsageError reports a command invoked with missing or conflicting input
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError formats a UsageError
func NewUsageError(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ReadJSONInput reads a JSON document from path, or from stdin when path is "-"
func ReadJSONInput(path string, stdin io.Reader) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	data = []byte(strings.TrimSpace(string(data)))
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	return data, nil
}

// DecodeTaskInput reads a task from path (or stdin) into v. The document
// may be the bare task or wrapped as {"task": {...}}, as invoke accepts.
func DecodeTaskInput(path string, stdin io.Reader, v any) error {
	data, err := ReadJSONInput(path, stdin)
	if err != nil {
		return err
	}
	return commands.DecodeTask(data, v)
}

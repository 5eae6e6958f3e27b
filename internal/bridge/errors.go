package bridge

import (
	"errors"

	"github.com/thenoetrevino/novi/internal/commands"
	"github.com/thenoetrevino/novi/internal/models"
)

// Error codes carried in Response.Code
const (
	CodeUnknownCommand = "unknown_command"
	CodeInvalidArgs    = "invalid_args"
	CodeValidation     = "validation"
)

// errorCodes pairs each code with the sentinel it stands for on both ends
// of the socket
var errorCodes = []struct {
	code     string
	sentinel error
}{
	{CodeUnknownCommand, commands.ErrUnknownCommand},
	{CodeInvalidArgs, commands.ErrInvalidArgs},
	{CodeValidation, models.ErrEmptyStationCode},
}

// errorCode classifies a command failure; unclassified errors get ""
func errorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.sentinel) {
			return ec.code
		}
	}
	return ""
}

func sentinelFor(code string) error {
	for _, ec := range errorCodes {
		if ec.code == code {
			return ec.sentinel
		}
	}
	return nil
}

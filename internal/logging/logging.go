package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the log file created inside the log directory
const FileName = "novi.log"

// Init installs the default slog logger, writing to <logDir>/novi.log.
// Uses text format for human readability.
func Init(logDir string, level slog.Level) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

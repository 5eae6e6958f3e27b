package database

import (
	"database/sql"
	"log/slog"
	"net/url"
	"strings"
)

// connectionPragmas are applied by the driver to every physical connection.
// busy_timeout comes first so the journal mode switch can wait out a
// concurrent writer instead of failing with SQLITE_BUSY.
var connectionPragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"journal_mode(WAL)",
}

// dsn builds a modernc.org/sqlite data source name for path.
// Plain paths, file: URIs and sqlite:// URLs are all accepted.
func dsn(path string) string {
	path = strings.TrimPrefix(path, "sqlite://")

	params := url.Values{}
	for _, p := range connectionPragmas {
		params.Add("_pragma", p)
	}

	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + params.Encode()
}

// closeDB closes db and logs, rather than returns, any failure.
// Used on error paths that already return a more specific error.
func closeDB(db *sql.DB) {
	if closeErr := db.Close(); closeErr != nil {
		slog.Error("error closing db", "error", closeErr)
	}
}

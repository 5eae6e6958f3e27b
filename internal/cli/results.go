package cli

import (
	"strconv"

	"github.com/thenoetrevino/novi/internal/cli/styles"
)

// InsertResult reports a single inserted task row
type InsertResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// QuietString implements Quieter with the new row's ID
func (r *InsertResult) QuietString() string {
	return strconv.FormatInt(r.ID, 10)
}

// Render implements Renderer
func (r *InsertResult) Render() string {
	return styles.Success("%s (id %d)", r.Message, r.ID) + "\n"
}

// FormatOptional renders a nullable column for tables
func FormatOptional[T any](v *T, format func(T) string) string {
	if v == nil {
		return "-"
	}
	return format(*v)
}

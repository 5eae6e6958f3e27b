package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thenoetrevino/novi/internal/cli/styles"
)

// Quieter is implemented by results that have a minimal form for --quiet,
// such as an ID or a row count
type Quieter interface {
	QuietString() string
}

// Renderer is implemented by results with their own human-readable layout
type Renderer interface {
	Render() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if q, ok := data.(Quieter); ok {
			if s := q.QuietString(); s != "" {
				fmt.Println(s)
			}
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintln(os.Stderr, styles.Error(message))
	if suggestion != "" {
		fmt.Fprintln(os.Stderr, styles.Suggestion(suggestion))
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case Renderer:
		fmt.Print(v.Render())
	case string:
		fmt.Println(v)
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}

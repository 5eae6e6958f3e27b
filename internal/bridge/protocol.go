// Package bridge serves the command registry over a Unix domain socket so a
// UI shell can invoke data operations without linking against Go.
//
// The wire format is newline-delimited JSON: the shell writes Request values
// and reads Response values, matched by ID. Responses can arrive out of
// order because every request runs on its own goroutine.
package bridge

import (
	"context"
	"encoding/json"
)

// ProtocolVersion is the current wire protocol version.
// Increment when making breaking changes to Request or Response.
const ProtocolVersion = 1

// PingCommand is answered by the server itself with a metrics snapshot
const PingCommand = "ping"

// Request asks the server to run one command
type Request struct {
	Version int             `json:"version"`
	ID      string          `json:"id,omitempty"`
	Cmd     string          `json:"cmd"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Response carries the outcome of one Request. Exactly one of Result or
// Error is meaningful, as indicated by OK.
type Response struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	OK      bool   `json:"ok"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"` // error class, see errors.go
}

// Invoker runs a named command with raw JSON arguments
type Invoker interface {
	Invoke(ctx context.Context, name string, args json.RawMessage) (string, error)
}

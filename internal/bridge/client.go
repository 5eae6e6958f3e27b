package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrClientClosed is returned by Invoke after Close
var ErrClientClosed = errors.New("bridge client is closed")

// CommandError is a failure reported by the server for one request.
// Message is the server-side error text, unchanged. Code, when set, makes
// the error match the sentinel the server-side failure matched.
type CommandError struct {
	Cmd     string
	Code    string
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel error for Code, or nil
func (e *CommandError) Unwrap() error {
	return sentinelFor(e.Code)
}

// Client is a connection to a bridge server. Calls are serialised; use one
// Client per goroutine if requests should run concurrently.
type Client struct {
	conn    net.Conn
	encoder *json.Encoder
	decoder *json.Decoder
	mu      sync.Mutex
	closed  bool
}

// Dial connects to the bridge socket at socketPath
func Dial(ctx context.Context, socketPath string) (*Client, error) {
	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to dial bridge socket: %w", err)
	}

	return &Client{
		conn:    conn,
		encoder: json.NewEncoder(conn),
		decoder: json.NewDecoder(conn),
	}, nil
}

// Invoke runs cmd on the server and returns its result string.
// A command failure comes back as *CommandError.
func (c *Client) Invoke(ctx context.Context, cmd string, args json.RawMessage) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return "", ErrClientClosed
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("failed to set deadline: %w", err)
	}

	req := Request{
		Version: ProtocolVersion,
		ID:      uuid.NewString(),
		Cmd:     cmd,
		Args:    args,
	}
	if err := c.encoder.Encode(req); err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	// Calls are serialised, so the next response with our ID is ours.
	// Anything else is a leftover from an earlier call that timed out.
	for {
		var resp Response
		if err := c.decoder.Decode(&resp); err != nil {
			return "", fmt.Errorf("failed to read response: %w", err)
		}
		if resp.ID != req.ID {
			continue
		}
		if !resp.OK {
			return "", &CommandError{Cmd: cmd, Code: resp.Code, Message: resp.Error}
		}
		return resp.Result, nil
	}
}

// Ping returns the server's metrics snapshot
func (c *Client) Ping(ctx context.Context) (MetricsSnapshot, error) {
	var snap MetricsSnapshot
	out, err := c.Invoke(ctx, PingCommand, nil)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		return snap, fmt.Errorf("failed to decode ping result: %w", err)
	}
	return snap, nil
}

// Close closes the connection. Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

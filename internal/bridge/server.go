package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// client represents a connected UI shell
type client struct {
	conn       net.Conn
	send       chan Response // closed by handleClient once no dispatch is running
	done       chan struct{}
	writerDone chan struct{}
	closeOnce  sync.Once // Ensures done is closed only once
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Server answers command requests on a Unix domain socket
type Server struct {
	socketPath       string
	listener         net.Listener
	invoker          Invoker
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	metrics          *Metrics
	logger           *slog.Logger
	clientBufferSize int // Configurable client send queue size
	shutdownOnce     sync.Once
}

// getEnvInt reads an integer from an environment variable, returning defaultVal if not set or invalid
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer creates the socket listener. A stale socket file left by a
// crashed process is removed first.
func NewServer(socketPath string, invoker Invoker) (*Server, error) {
	if invoker == nil {
		return nil, errors.New("bridge: invoker is required")
	}

	dir := filepath.Dir(socketPath)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		invoker:          invoker,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		metrics:          NewMetrics(),
		logger:           slog.Default().With("component", "bridge"),
		clientBufferSize: getEnvInt("NOVI_BRIDGE_CLIENT_BUFFER", 16),
	}, nil
}

// SocketPath returns the path the server is listening on
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Metrics returns the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the accept loop until ctx is cancelled or Shutdown is called
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Bridge starting", "socket", s.socketPath)

	combinedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-s.ctx.Done()
		cancel()
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(combinedCtx)
	}()

	var err error
	select {
	case <-combinedCtx.Done():
		s.logger.Info("Bridge context cancelled, shutting down")
	case err = <-acceptErr:
		if err != nil {
			s.logger.Error("Accept loop error", "error", err)
		}
	}

	if shutdownErr := s.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Deadline so cancellation is noticed even without new connections
		if ul, ok := s.listener.(*net.UnixListener); ok {
			if err := ul.SetDeadline(time.Now().Add(1 * time.Second)); err != nil {
				s.logger.Warn("Error setting listener deadline", "error", err)
			}
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:       conn,
			send:       make(chan Response, s.clientBufferSize),
			done:       make(chan struct{}),
			writerDone: make(chan struct{}),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()

		s.metrics.IncConnections()
		s.updateClientCount()
		s.logger.Debug("Client connected", "clients", s.getClientCount())

		go s.handleClient(ctx, c)
		go s.clientWriter(c)
	}
}

// handleClient reads requests from a connected client and dispatches each
// on its own goroutine. When the client stops writing, requests already in
// flight are still answered before the connection is closed.
func (s *Server) handleClient(ctx context.Context, c *client) {
	var inflight sync.WaitGroup
	defer func() {
		inflight.Wait()
		// No dispatch can reply any more, so the writer may drain and exit
		close(c.send)
		<-c.writerDone
		s.removeClient(c)
		s.logger.Debug("Client disconnected", "clients", s.getClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			// The stream cannot be resynchronised after a decode error
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				s.logger.Warn("Dropping client after bad request", "error", err)
			}
			return
		}

		if req.Version != 0 && req.Version != ProtocolVersion {
			s.logger.Warn("Protocol version mismatch", "got", req.Version, "want", ProtocolVersion)
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		inflight.Add(1)
		go func() {
			defer inflight.Done()
			s.dispatch(ctx, c, req)
		}()
	}
}

// dispatch runs one request and queues its response
func (s *Server) dispatch(ctx context.Context, c *client, req Request) {
	s.metrics.IncRequests()

	resp := Response{Version: ProtocolVersion, ID: req.ID}

	var (
		result string
		err    error
	)
	if req.Cmd == PingCommand {
		result, err = s.ping()
	} else {
		result, err = s.invoker.Invoke(ctx, req.Cmd, req.Args)
	}

	if err != nil {
		s.metrics.IncFailures()
		s.logger.Warn("Command failed", "cmd", req.Cmd, "id", req.ID, "error", err)
		resp.Error = err.Error()
		resp.Code = errorCode(err)
	} else {
		resp.OK = true
		resp.Result = result
	}

	s.reply(c, resp)
}

func (s *Server) ping() (string, error) {
	data, err := json.Marshal(s.metrics.GetSnapshot())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// reply queues resp for the writer. It blocks while the queue is full and
// gives up once the client has gone away.
func (s *Server) reply(c *client, resp Response) {
	select {
	case c.send <- resp:
	case <-c.done:
	}
}

// clientWriter sends responses to a client until handleClient closes the
// send queue. Once the client is gone, queued responses are discarded.
func (s *Server) clientWriter(c *client) {
	defer close(c.writerDone)
	encoder := json.NewEncoder(c.conn)

	for resp := range c.send {
		select {
		case <-c.done:
			continue
		default:
		}
		if err := encoder.Encode(resp); err != nil {
			c.close()
		}
	}
}

// Shutdown closes the listener and every client and removes the socket file.
// Safe to call more than once.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.logger.Info("Shutting down bridge")

		s.cancel()

		if s.listener != nil {
			if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
				s.logger.Warn("Error closing listener", "error", closeErr)
			}
		}

		s.mu.Lock()
		for c := range s.clients {
			c.close()
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()
		s.updateClientCount()

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			err = fmt.Errorf("failed to remove socket file: %w", removeErr)
		}
	})

	return err
}

// Helper methods

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.getClientCount()))
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	c.close()
	s.updateClientCount()
}

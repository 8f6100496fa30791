// Package api serves the player update endpoint.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/KirkDiggler/announcer/internal/common/uuid"
	"github.com/KirkDiggler/announcer/internal/services/tracker"
)

// DefaultRequestTimeout bounds a single request when the config leaves it unset
const DefaultRequestTimeout = 10 * time.Second

// Config holds the configuration for the server
type Config struct {
	// Addr is the TCP address to listen on, used by Start
	Addr string

	// RequestTimeout bounds each request (optional)
	RequestTimeout time.Duration

	// Tracker handles accepted updates
	Tracker tracker.Service

	// UUIDGenerator creates request ids
	UUIDGenerator uuid.UUID

	// Logger (optional)
	Logger *slog.Logger
}

// Server is the HTTP front of the tracker
type Server struct {
	tracker       tracker.Service
	uuidGenerator uuid.UUID
	logger        *slog.Logger
	handler       http.Handler
	httpServer    *http.Server
}

// New creates a new server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Tracker == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		tracker:       cfg.Tracker,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", s.handleUpdate)
	mux.HandleFunc("GET /player", s.handleGetPlayer)

	// Recovery sits inside the timeout so a panic is answered before the
	// timeout handler gives up on the request
	s.handler = s.withRequestID(http.TimeoutHandler(s.withRecover(mux), timeout, "request timed out\n"))

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: timeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves until Stop is called
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(listener)
}

// Serve accepts connections on the listener until Stop is called
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("listening", "addr", listener.Addr().String())

	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop stops accepting connections and waits for in-flight requests
func (s *Server) Stop(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

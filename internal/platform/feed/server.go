package feed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Path is where the feed endpoint is mounted.
const Path = "/feed"

// writeTimeout bounds a single snapshot write to one client.
const writeTimeout = 5 * time.Second

// Handler upgrades requests to WebSocket and streams hub values as JSON.
type Handler struct {
	hub    *Hub
	logger *log.Logger
}

// NewHandler creates a feed handler for hub.
func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Warn("websocket accept failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer c.CloseNow()

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	h.logger.Info("subscriber connected", "remote", r.RemoteAddr)
	defer h.logger.Info("subscriber disconnected", "remote", r.RemoteAddr)

	// Clients never send; CloseRead handles control frames and
	// cancels ctx once the peer goes away.
	ctx := c.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-sub.C:
			if !ok {
				c.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, c, v)
			cancel()
			if err != nil {
				h.logger.Debug("write failed", "remote", r.RemoteAddr, "error", err)
				return
			}
		}
	}
}

// Server serves the feed endpoint over HTTP.
type Server struct {
	hub    *Hub
	srv    *http.Server
	ln     net.Listener
	logger *log.Logger
}

// NewServer creates a feed server listening on addr once started.
func NewServer(addr string, hub *Hub, logger *log.Logger) *Server {
	logger = logger.WithPrefix("feed")

	mux := http.NewServeMux()
	mux.Handle(Path, NewHandler(hub, logger))

	return &Server{
		hub:    hub,
		logger: logger,
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start binds the listen address and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("feed: cannot listen on %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	s.logger.Info("serving snapshots", "address", ln.Addr().String(), "path", Path)

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Shutdown disconnects every subscriber and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("feed: shutdown: %w", err)
	}
	return nil
}

// Package bridge receives frames streamed by transport.WebSocket and hands
// them to a local transport, so a matrix can be driven from another host.
package bridge

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
	"github.com/fkcurrie/ledmatrix-golang/pkg/transport"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	writeWait  = 10 * time.Second
)

// Server is an http.Handler that accepts frame streams
type Server struct {
	next     ledmatrix.Transport
	maxFrame int
	upgrader websocket.Upgrader
	logger   *slog.Logger

	// mu serializes frames from concurrent clients
	mu     sync.Mutex
	frames int
}

// NewServer creates a bridge forwarding to next. Frames longer than
// maxFrame bytes close the connection.
func NewServer(next ledmatrix.Transport, maxFrame int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		next:     next,
		maxFrame: maxFrame,
		logger:   logger,
	}
}

// Frames returns the number of frames forwarded so far
func (s *Server) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// ServeHTTP upgrades the request and forwards frames until the client goes away
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	s.logger.Info("frame stream connected", "remote", r.RemoteAddr)

	done := make(chan struct{})
	go s.pingPump(conn, done)
	s.readPump(conn)
	close(done)

	s.logger.Info("frame stream disconnected", "remote", r.RemoteAddr)
}

// readPump reads frame messages and forwards them
func (s *Server) readPump(conn *websocket.Conn) {
	defer conn.Close()

	// Length byte, up to 255 bytes of line name, then the frame
	conn.SetReadLimit(int64(1 + 0xFF + s.maxFrame))
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("frame stream read failed", "err", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
		if kind != websocket.BinaryMessage {
			continue
		}

		buf, line, err := transport.DecodeMessage(msg)
		if err != nil {
			s.logger.Warn("dropping malformed frame", "err", err)
			continue
		}
		if err := s.forward(buf, line); err != nil {
			s.logger.Warn("failed to forward frame", "line", line, "err", err)
		}
	}
}

func (s *Server) forward(buf []byte, line ledmatrix.HardwareLine) error {
	if len(buf) > s.maxFrame {
		return errors.New("frame too long")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames++
	return s.next.Send(buf, line)
}

// pingPump keeps idle connections alive
func (s *Server) pingPump(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

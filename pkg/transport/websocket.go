package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

const (
	wsWriteWait = 10 * time.Second
	wsDialWait  = 5 * time.Second
)

// WebSocket streams frames to a remote LED bridge or simulator. Every frame
// is one binary message: a length byte, the hardware line name, then the
// serialized frame.
//
// A failed write drops the connection; the next Send dials again.
type WebSocket struct {
	mu     sync.Mutex
	url    string
	dialer *websocket.Dialer
	conn   *websocket.Conn
	logger *slog.Logger
	closed bool
}

// NewWebSocket creates a transport for url (ws:// or wss://). It does not
// connect until the first Send.
func NewWebSocket(url string, logger *slog.Logger) *WebSocket {
	if logger == nil {
		logger = slog.Default()
	}
	d := *websocket.DefaultDialer
	d.HandshakeTimeout = wsDialWait
	return &WebSocket{
		url:    url,
		dialer: &d,
		logger: logger,
	}
}

// EncodeMessage builds the message for one frame
func EncodeMessage(buf []byte, line ledmatrix.HardwareLine) ([]byte, error) {
	if len(line) > 0xFF {
		return nil, fmt.Errorf("line name too long: %d bytes", len(line))
	}
	msg := make([]byte, 0, 1+len(line)+len(buf))
	msg = append(msg, byte(len(line)))
	msg = append(msg, line...)
	return append(msg, buf...), nil
}

// DecodeMessage splits a message built by EncodeMessage
func DecodeMessage(msg []byte) ([]byte, ledmatrix.HardwareLine, error) {
	if len(msg) < 1 || len(msg) < 1+int(msg[0]) {
		return nil, "", errors.New("short frame message")
	}
	n := int(msg[0])
	return msg[1+n:], ledmatrix.HardwareLine(msg[1 : 1+n]), nil
}

// Send writes one frame message, dialing first if needed
func (w *WebSocket) Send(buf []byte, line ledmatrix.HardwareLine) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	msg, err := EncodeMessage(buf, line)
	if err != nil {
		return err
	}

	if w.conn == nil {
		ctx, cancel := context.WithTimeout(context.Background(), wsDialWait)
		defer cancel()
		conn, _, err := w.dialer.DialContext(ctx, w.url, nil)
		if err != nil {
			return fmt.Errorf("failed to connect to %s: %w", w.url, err)
		}
		w.logger.Info("connected frame stream", "url", w.url)
		w.conn = conn
	}

	w.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := w.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
		w.logger.Warn("frame stream write failed, reconnecting on next frame", "url", w.url, "err", err)
		w.conn.Close()
		w.conn = nil
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Close sends a close message and closes the connection
func (w *WebSocket) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	if w.conn == nil {
		return nil
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	w.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	err := w.conn.Close()
	w.conn = nil
	return err
}

//go:build !(linux && cgo && ws281x)

package transport

import (
	"errors"
	"log/slog"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// ErrNoWS281x is returned when the binary was built without the ws281x tag
var ErrNoWS281x = errors.New("transport: built without ws281x support (build with -tags ws281x on linux)")

// WS281x is unavailable in this build
type WS281x struct{}

// NewWS281x always fails in this build
func NewWS281x(opts WS281xOptions, logger *slog.Logger) (*WS281x, error) {
	return nil, ErrNoWS281x
}

// Send always fails in this build
func (w *WS281x) Send(buf []byte, line ledmatrix.HardwareLine) error {
	return ErrNoWS281x
}

// Close does nothing
func (w *WS281x) Close() error { return nil }

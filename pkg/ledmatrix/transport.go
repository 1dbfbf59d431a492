package ledmatrix

import (
	"context"
	"time"
)

// HardwareLine names the output a frame is sent on, e.g. "GPIO18" or
// "/dev/spidev0.0". The matrix never interprets it.
type HardwareLine string

// Transport sends a serialized frame over one LED line.
type Transport interface {
	Send(buf []byte, line HardwareLine) error
}

// TransportFunc adapts a function to a Transport
type TransportFunc func(buf []byte, line HardwareLine) error

// Send calls f
func (f TransportFunc) Send(buf []byte, line HardwareLine) error {
	return f(buf, line)
}

// Discard is a Transport that drops every frame
var Discard Transport = TransportFunc(func([]byte, HardwareLine) error { return nil })

// Clock provides the pause between scrolling frames.
type Clock interface {
	Delay(ctx context.Context, d time.Duration) error
}

// SystemClock waits on a real timer
type SystemClock struct{}

// Delay blocks for d or until ctx is done
func (SystemClock) Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

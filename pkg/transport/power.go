package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// outputLine is the part of *gpiocdev.Line the power switch uses
type outputLine interface {
	SetValue(value int) error
	Close() error
}

// Powered switches the strip supply through a GPIO line (usually a MOSFET
// or level shifter enable pin) and forwards frames to another transport.
// The supply is turned on before the first frame and off on Close.
type Powered struct {
	mu      sync.Mutex
	next    ledmatrix.Transport
	line    outputLine
	name    string
	settle  time.Duration
	on      bool
	closed  bool
	logger  *slog.Logger
	sleepFn func(time.Duration)
}

// NewPowered requests offset on chip (e.g. "gpiochip0") as an output held
// low. settle is the pause after switching the supply on.
func NewPowered(next ledmatrix.Transport, chip string, offset int, settle time.Duration, logger *slog.Logger) (*Powered, error) {
	l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer("ledmatrix"))
	if err != nil {
		return nil, fmt.Errorf("failed to request power line %s:%d: %w", chip, offset, err)
	}
	return newPowered(next, l, fmt.Sprintf("%s:%d", chip, offset), settle, logger), nil
}

func newPowered(next ledmatrix.Transport, line outputLine, name string, settle time.Duration, logger *slog.Logger) *Powered {
	if logger == nil {
		logger = slog.Default()
	}
	return &Powered{
		next:    next,
		line:    line,
		name:    name,
		settle:  settle,
		logger:  logger,
		sleepFn: time.Sleep,
	}
}

// Send powers the strip if needed and forwards buf
func (p *Powered) Send(buf []byte, line ledmatrix.HardwareLine) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if !p.on {
		if err := p.line.SetValue(1); err != nil {
			return fmt.Errorf("failed to switch on power line %s: %w", p.name, err)
		}
		p.logger.Info("LED supply on", "line", p.name)
		p.on = true
		p.sleepFn(p.settle)
	}
	return p.next.Send(buf, line)
}

// Close switches the supply off, releases the line and closes the wrapped
// transport if it is closable
func (p *Powered) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if p.on {
		if err := p.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("failed to switch off power line %s: %w", p.name, err))
		}
		p.logger.Info("LED supply off", "line", p.name)
	}
	if err := p.line.Close(); err != nil {
		// The line may already be released; keep going
		p.logger.Warn("failed to release power line", "line", p.name, "err", err)
	}
	if err := closeTransport(p.next); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

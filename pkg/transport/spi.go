// Package transport holds the ways a serialized LED frame can leave the
// process: SPI and PWM/DMA drivers for real strips, a network stream, and
// previews that decode the frame back into pixels.
package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

const (
	// SPIFrequency clocks three SPI bits per WS2812 bit at 800kHz
	SPIFrequency = 2400 * physic.KiloHertz
	// resetBytes keeps MOSI low for 80µs after the frame so the strip latches
	resetBytes = 24
)

// ErrClosed is returned by a transport after Close
var ErrClosed = errors.New("transport: closed")

// SPI drives WS2812 class strips from the MOSI pin of a SPI port. Each
// data bit is expanded to three SPI bits (1 -> 110, 0 -> 100).
//
// The hardware line is the periph.io SPI port name, e.g. "/dev/spidev0.0"
// or "SPI0.0". Ports are opened on first use and kept until Close.
type SPI struct {
	mu     sync.Mutex
	open   func(name string) (spi.PortCloser, error)
	ports  map[ledmatrix.HardwareLine]spi.PortCloser
	conns  map[ledmatrix.HardwareLine]spi.Conn
	buf    []byte
	logger *slog.Logger
	closed bool
}

// NewSPI creates a SPI transport. host.Init must have been called so the
// SPI ports are registered.
func NewSPI(logger *slog.Logger) *SPI {
	return newSPI(spireg.Open, logger)
}

func newSPI(open func(string) (spi.PortCloser, error), logger *slog.Logger) *SPI {
	if logger == nil {
		logger = slog.Default()
	}
	return &SPI{
		open:   open,
		ports:  make(map[ledmatrix.HardwareLine]spi.PortCloser),
		conns:  make(map[ledmatrix.HardwareLine]spi.Conn),
		logger: logger,
	}
}

// Send encodes buf and writes it to the SPI port named by line
func (s *SPI) Send(buf []byte, line ledmatrix.HardwareLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	c, err := s.connect(line)
	if err != nil {
		return err
	}

	s.buf = EncodeNRZ(s.buf[:0], buf)
	if err := c.Tx(s.buf, nil); err != nil {
		return fmt.Errorf("spi write to %s failed: %w", line, err)
	}
	return nil
}

// connect assumes the mutex is held
func (s *SPI) connect(line ledmatrix.HardwareLine) (spi.Conn, error) {
	if c, ok := s.conns[line]; ok {
		return c, nil
	}

	p, err := s.open(string(line))
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %q: %w", line, err)
	}
	c, err := p.Connect(SPIFrequency, spi.Mode0, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to connect to SPI port %q: %w", line, err)
	}

	s.logger.Info("opened SPI LED line", "line", line, "freq", SPIFrequency)
	s.ports[line] = p
	s.conns[line] = c
	return c, nil
}

// Close releases every opened port
func (s *SPI) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for line, p := range s.ports {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close SPI port %q: %w", line, err))
		}
	}
	s.ports = nil
	s.conns = nil
	return errors.Join(errs...)
}

// EncodeNRZ appends the SPI bit pattern for data to dst, followed by the
// reset gap, and returns the extended slice.
func EncodeNRZ(dst, data []byte) []byte {
	for _, b := range data {
		// 8 data bits become 24 SPI bits
		var bits uint32
		for i := 7; i >= 0; i-- {
			bits <<= 3
			if b>>uint(i)&1 != 0 {
				bits |= 0b110
			} else {
				bits |= 0b100
			}
		}
		dst = append(dst, byte(bits>>16), byte(bits>>8), byte(bits))
	}
	for i := 0; i < resetBytes; i++ {
		dst = append(dst, 0)
	}
	return dst
}

//go:build linux && cgo && ws281x

package transport

import (
	"fmt"
	"log/slog"
	"sync"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// WS281x drives a strip through the rpi_ws281x PWM/DMA library on a
// Raspberry Pi. It is bound to the GPIO pin of the first line it sees.
type WS281x struct {
	mu     sync.Mutex
	opts   WS281xOptions
	dev    *ws2811.WS2811
	pin    int
	logger *slog.Logger
}

// NewWS281x creates the driver. The device is initialized on the first Send.
func NewWS281x(opts WS281xOptions, logger *slog.Logger) (*WS281x, error) {
	if opts.LEDCount <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", opts.LEDCount)
	}
	if opts.Brightness < 0 || opts.Brightness > 255 {
		return nil, fmt.Errorf("brightness must be between 0 and 255")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WS281x{opts: opts, logger: logger}, nil
}

// init assumes the mutex is held
func (w *WS281x) init(line ledmatrix.HardwareLine) error {
	pin, err := gpioPin(line)
	if err != nil {
		return err
	}

	opt := ws2811.DefaultOptions
	opt.Channels = append([]ws2811.ChannelOption(nil), ws2811.DefaultOptions.Channels...)
	opt.Channels[0].GpioPin = pin
	opt.Channels[0].LedCount = w.opts.LEDCount
	opt.Channels[0].Brightness = w.opts.Brightness
	// The frame is already in wire order; pass the bytes through untouched
	opt.Channels[0].StripeType = ws2811.WS2811StripRGB
	if w.opts.Stride == 4 {
		opt.Channels[0].StripeType = ws2811.SK6812StripRGBW
	}

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return fmt.Errorf("failed to create WS2811: %w", err)
	}
	if err := dev.Init(); err != nil {
		return fmt.Errorf("failed to initialize WS2811: %w", err)
	}

	w.logger.Info("initialized ws281x", "pin", pin, "leds", w.opts.LEDCount)
	w.dev = dev
	w.pin = pin
	return nil
}

// Send renders buf on the strip
func (w *WS281x) Send(buf []byte, line ledmatrix.HardwareLine) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dev == nil {
		if err := w.init(line); err != nil {
			return err
		}
	} else if pin, err := gpioPin(line); err != nil || pin != w.pin {
		return fmt.Errorf("ws281x is bound to GPIO%d, got line %q", w.pin, line)
	}

	if len(buf) != w.opts.LEDCount*w.opts.Stride {
		return fmt.Errorf("frame is %d bytes, want %d", len(buf), w.opts.LEDCount*w.opts.Stride)
	}
	packWords(w.dev.Leds(0), buf, w.opts.Stride)
	if err := w.dev.Render(); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return w.dev.Wait()
}

// Close releases the DMA channel and PWM
func (w *WS281x) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dev != nil {
		w.dev.Fini()
		w.dev = nil
	}
	return nil
}

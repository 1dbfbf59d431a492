package transport

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// ledRune is drawn twice per LED so pixels come out roughly square
const ledRune = '█'

// Terminal previews frames in a terminal. It decodes the wire bytes with
// the matrix layout, so wiring mistakes show up in the preview exactly as
// they would on the strip.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	layout ledmatrix.Layout
	owned  bool
}

// NewTerminal opens the controlling terminal
func NewTerminal(layout ledmatrix.Layout) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	t := NewTerminalScreen(screen, layout)
	t.owned = true
	return t, nil
}

// NewTerminalScreen draws on an already initialized screen, which the
// caller keeps ownership of.
func NewTerminalScreen(screen tcell.Screen, layout ledmatrix.Layout) *Terminal {
	screen.HideCursor()
	return &Terminal{screen: screen, layout: layout}
}

// Send draws the frame, one row of LEDs per terminal line
func (t *Terminal) Send(buf []byte, line ledmatrix.HardwareLine) error {
	grid, err := t.layout.Decode(buf)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen == nil {
		return ErrClosed
	}
	for y, row := range grid {
		for x, c := range row {
			r, g, b, _ := c.RGBW()
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
				Background(tcell.ColorBlack)
			t.screen.SetContent(2*x, y, ledRune, nil, style)
			t.screen.SetContent(2*x+1, y, ledRune, nil, style)
		}
	}
	label := fmt.Sprintf(" %s %dx%d %s", line, t.layout.Width, t.layout.Height, t.layout.Mode)
	for i, r := range label {
		t.screen.SetContent(i, t.layout.Height, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal if NewTerminal opened it
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen != nil && t.owned {
		t.screen.Fini()
	}
	t.screen = nil
	return nil
}

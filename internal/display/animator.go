package display

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// FrameFunc draws frame n into the matrix
type FrameFunc func(m *ledmatrix.Matrix, n int)

// Animator redraws and shows the matrix on a fixed interval
type Animator struct {
	matrix   *ledmatrix.Matrix
	interval time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	draw  FrameFunc
	frame int
}

// NewAnimator creates a new animator instance
func NewAnimator(m *ledmatrix.Matrix, interval time.Duration, draw FrameFunc, logger *slog.Logger) *Animator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Animator{
		matrix:   m,
		interval: interval,
		draw:     draw,
		logger:   logger,
	}
}

// SetFrameFunc swaps the animation, restarting the frame count
func (a *Animator) SetFrameFunc(draw FrameFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.draw = draw
	a.frame = 0
}

// Start runs until ctx is done. A frame that fails to show is logged and
// the loop carries on.
func (a *Animator) Start(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := a.render(); err != nil {
				a.logger.Warn("failed to show frame", "frame", a.frame, "err", err)
			}
		}
	}
}

// render draws the next frame and shows it
func (a *Animator) render() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.draw == nil {
		return nil
	}
	a.draw(a.matrix, a.frame)
	a.frame++
	return a.matrix.Show()
}

// Rainbow spreads the hue wheel across the columns and moves it step
// degrees per frame.
func Rainbow(lightness, step int) FrameFunc {
	return func(m *ledmatrix.Matrix, n int) {
		w := m.Width()
		for x := 0; x < w; x++ {
			c := ledmatrix.HSL(n*step+x*360/w, 99, lightness)
			for y := 0; y < m.Height(); y++ {
				m.SetPixel(x, y, c)
			}
		}
	}
}

// Scroll shifts whatever is on the matrix one column left per frame
func Scroll(m *ledmatrix.Matrix, n int) {
	m.ShiftX(-1, true)
}

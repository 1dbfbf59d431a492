package output

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/fkcurrie/ledmatrix-golang/internal/config"
	"github.com/fkcurrie/ledmatrix-golang/internal/types"
	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
	"github.com/fkcurrie/ledmatrix-golang/pkg/transport"
)

func TestOpen(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Transport.Kinds = []string{types.TransportPNG, types.TransportDiscard}
	cfg.Transport.PNGPath = filepath.Join(t.TempDir(), "frame.png")

	lc, err := cfg.LedMatrix()
	if err != nil {
		t.Fatalf("LedMatrix() error = %v", err)
	}
	m, err := ledmatrix.New(lc, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tee, err := Open(cfg, m.Layout(), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer tee.Close()

	if len(tee) != 2 {
		t.Fatalf("len(Open()) = %d, want 2", len(tee))
	}
	snap, ok := tee[0].(*transport.Snapshot)
	if !ok {
		t.Fatalf("tee[0] = %T, want *transport.Snapshot", tee[0])
	}

	m.Fill(ledmatrix.Green)
	if err := tee.Send(m.Serialize(), m.Line()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if snap.Image() == nil {
		t.Error("snapshot did not render the frame")
	}
}

func TestOpenSPIHostError(t *testing.T) {
	initErr := errors.New("no host")
	saved := hostInit
	hostInit = func() error { return initErr }
	defer func() { hostInit = saved }()

	cfg := config.DefaultConfig()
	cfg.Transport.Kinds = []string{types.TransportDiscard, types.TransportSPI}

	if _, err := Open(cfg, ledmatrix.Layout{Width: 8, Height: 8, Mode: ledmatrix.ModeGRB}, nil); !errors.Is(err, initErr) {
		t.Errorf("Open() error = %v, want %v", err, initErr)
	}
}

func TestOpenUnknown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Transport.Kinds = []string{"serial"}
	if _, err := Open(cfg, ledmatrix.Layout{Width: 1, Height: 1, Mode: ledmatrix.ModeGRB}, nil); err == nil {
		t.Error("Open() with an unknown kind did not return error")
	}
}

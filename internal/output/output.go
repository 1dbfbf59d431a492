// Package output builds the transport chain described by the config.
package output

import (
	"fmt"
	"log/slog"

	"periph.io/x/host/v3"

	"github.com/fkcurrie/ledmatrix-golang/internal/config"
	"github.com/fkcurrie/ledmatrix-golang/internal/types"
	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
	"github.com/fkcurrie/ledmatrix-golang/pkg/transport"
)

// hostInit loads the periph.io host drivers; replaced in tests
var hostInit = func() error {
	_, err := host.Init()
	return err
}

// Open creates every configured transport and wraps them in a Tee, behind
// the power switch when one is enabled. The result must be closed.
func Open(cfg *config.Config, layout ledmatrix.Layout, logger *slog.Logger) (transport.Tee, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var tee transport.Tee
	fail := func(err error) (transport.Tee, error) {
		tee.Close()
		return nil, err
	}

	for _, kind := range cfg.Transport.Kinds {
		tr, err := open(kind, cfg, layout, logger)
		if err != nil {
			return fail(fmt.Errorf("failed to open %s transport: %w", kind, err))
		}
		logger.Info("opened transport", "kind", kind)
		tee = append(tee, tr)
	}

	if p := cfg.Transport.Power; p.Enabled {
		powered, err := transport.NewPowered(tee, p.Chip, p.Offset, cfg.PowerSettle(), logger)
		if err != nil {
			return fail(err)
		}
		return transport.Tee{powered}, nil
	}
	return tee, nil
}

func open(kind string, cfg *config.Config, layout ledmatrix.Layout, logger *slog.Logger) (ledmatrix.Transport, error) {
	switch kind {
	case types.TransportSPI:
		if err := hostInit(); err != nil {
			return nil, fmt.Errorf("failed to initialize host drivers: %w", err)
		}
		return transport.NewSPI(logger), nil
	case types.TransportWS281x:
		return transport.NewWS281x(transport.WS281xOptions{
			LEDCount:   layout.Width * layout.Height,
			Stride:     layout.Mode.Stride(),
			Brightness: cfg.Transport.Brightness,
		}, logger)
	case types.TransportWebSocket:
		return transport.NewWebSocket(cfg.Transport.URL, logger), nil
	case types.TransportTerminal:
		return transport.NewTerminal(layout)
	case types.TransportPNG:
		return transport.NewSnapshot(layout, cfg.Transport.CellSize, cfg.Transport.PNGPath), nil
	case types.TransportDiscard:
		return ledmatrix.Discard, nil
	}
	return nil, fmt.Errorf("unknown transport %q", kind)
}

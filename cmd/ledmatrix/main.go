package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fkcurrie/ledmatrix-golang/internal/config"
	"github.com/fkcurrie/ledmatrix-golang/internal/display"
	"github.com/fkcurrie/ledmatrix-golang/internal/graphics"
	"github.com/fkcurrie/ledmatrix-golang/internal/output"
	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	mode := flag.String("mode", "text", "what to show: text, char, rainbow, image or svg")
	text := flag.String("text", "", "message for text and char modes (overrides config)")
	colorName := flag.String("color", "", "text color name or #rrggbb (overrides config)")
	file := flag.String("file", "", "image or SVG file for image and svg modes")
	kinds := flag.String("transport", "", "comma separated transports (overrides config)")
	hold := flag.Duration("hold", 0, "how long to keep a still frame up before exiting; 0 waits for a signal")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("No config at %s, using defaults", *configPath)
		cfg = config.DefaultConfig()
	}
	if *text != "" {
		cfg.Text.Message = *text
	}
	if *colorName != "" {
		cfg.Text.Color = *colorName
	}
	if *kinds != "" {
		cfg.Transport.Kinds = strings.Split(*kinds, ",")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	matrixCfg, err := cfg.LedMatrix()
	if err != nil {
		log.Fatalf("Invalid matrix configuration: %v", err)
	}
	tr, err := output.Open(cfg, matrixCfg.Layout(), nil)
	if err != nil {
		log.Fatalf("Failed to open transports: %v", err)
	}
	defer tr.Close()

	m, err := ledmatrix.New(matrixCfg, tr)
	if err != nil {
		log.Fatalf("Failed to create matrix: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("Running %s on a %dx%d %s matrix", *mode, m.Width(), m.Height(), matrixCfg.Mode)
	if err := run(ctx, *mode, m, cfg, *file, *hold); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Failed to run %s: %v", *mode, err)
	}

	// Leave the strip dark
	m.Clear()
	if err := m.Show(); err != nil {
		log.Printf("Failed to clear matrix: %v", err)
	}
	log.Println("Shutting down...")
}

func run(ctx context.Context, mode string, m *ledmatrix.Matrix, cfg *config.Config, file string, hold time.Duration) error {
	c, err := cfg.TextColor()
	if err != nil {
		return err
	}

	switch mode {
	case "text":
		for {
			if err := m.PrintLine(ctx, cfg.Text.Message, c, cfg.TextSpeed()); err != nil {
				return err
			}
			if !cfg.Text.Loop {
				return nil
			}
		}
	case "char":
		ch, err := cfg.Char()
		if err != nil {
			return err
		}
		m.PrintChar(ch, c)
	case "rainbow":
		interval := time.Duration(cfg.Animation.RefreshRate) * time.Millisecond
		a := display.NewAnimator(m, interval, display.Rainbow(cfg.Animation.Lightness, cfg.Animation.HueStep), nil)
		return a.Start(ctx)
	case "image":
		img, err := graphics.LoadImage(file)
		if err != nil {
			return err
		}
		graphics.DrawImage(m, img, graphics.ImageOptions{Fit: true, Smooth: true})
	case "svg":
		if err := graphics.DrawSVGFile(m, file); err != nil {
			return err
		}
	default:
		return errors.New("unknown mode " + mode)
	}

	if err := m.Show(); err != nil {
		return err
	}
	if hold <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}
	return ledmatrix.SystemClock{}.Delay(ctx, hold)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fkcurrie/ledmatrix-golang/internal/bridge"
	"github.com/fkcurrie/ledmatrix-golang/internal/config"
	"github.com/fkcurrie/ledmatrix-golang/internal/output"
)

var (
	port       = flag.Int("port", 8080, "Port to listen on")
	configPath = flag.String("config", "config.json", "Path to configuration file")
	kinds      = flag.String("transport", "", "comma separated local transports (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("No config at %s, using defaults", *configPath)
		cfg = config.DefaultConfig()
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
	layout := matrixCfg.Layout()

	tr, err := output.Open(cfg, layout, nil)
	if err != nil {
		log.Fatalf("Failed to open transports: %v", err)
	}
	defer tr.Close()

	frames := bridge.NewServer(tr, layout.Len(), nil)

	mux := http.NewServeMux()
	mux.Handle("/frames", frames)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK %d frames\n", frames.Frames())
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: mux,
	}

	go func() {
		log.Printf("Listening on %s for %dx%d %s frames", server.Addr, layout.Width, layout.Height, layout.Mode)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server: %v", err)
	}
}

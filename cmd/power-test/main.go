package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

func main() {
	chip := flag.String("chip", "gpiochip0", "GPIO chip of the supply enable line")
	offset := flag.Int("offset", 17, "line offset on the chip")
	period := flag.Duration("period", time.Second, "toggle period")
	flag.Parse()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Toggling LED supply line %s:%d every %v", *chip, *offset, *period)

	line, err := gpiocdev.RequestLine(*chip, *offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer("ledmatrix-power-test"))
	if err != nil {
		log.Fatalf("Failed to request line: %v", err)
	}
	defer func() {
		// Leave the supply off
		if err := line.SetValue(0); err != nil {
			log.Printf("Failed to switch supply off: %v", err)
		}
		line.Close()
	}()

	ticker := time.NewTicker(*period)
	defer ticker.Stop()

	value := 0
	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return
		case <-ticker.C:
			value ^= 1
			if err := line.SetValue(value); err != nil {
				log.Printf("Failed to set value: %v", err)
				continue
			}
			log.Printf("LED supply %s", map[int]string{0: "off", 1: "on"}[value])
		}
	}
}

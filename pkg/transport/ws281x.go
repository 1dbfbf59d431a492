package transport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// WS281xOptions configures the PWM/DMA driver
type WS281xOptions struct {
	// LEDCount is width*height of the matrix
	LEDCount int
	// Stride is 3, or 4 for GRBW strips
	Stride     int
	Brightness int
}

// gpioPin parses a hardware line such as "GPIO18", "18" or "BCM18"
func gpioPin(line ledmatrix.HardwareLine) (int, error) {
	s := strings.ToUpper(string(line))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "GPIO"), "BCM")
	pin, err := strconv.Atoi(s)
	if err != nil || pin < 0 {
		return 0, fmt.Errorf("invalid GPIO line %q", line)
	}
	return pin, nil
}

// packWords turns the wire bytes into the 0xWWRRGGBB words the rpi_ws281x
// library expects. The library runs in RGB(W) strip mode, so it emits the
// bytes of each word in the order they appeared in buf.
func packWords(dst []uint32, buf []byte, stride int) {
	for i := range dst {
		b := buf[i*stride : (i+1)*stride]
		w := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
		if stride == 4 {
			w |= uint32(b[3]) << 24
		}
		dst[i] = w
	}
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/fkcurrie/ledmatrix-golang/internal/types"
	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// Config represents the application configuration
type Config struct {
	Matrix    types.MatrixConfig    `json:"matrix" toml:"matrix"`
	Transport types.TransportConfig `json:"transport" toml:"transport"`
	Text      types.TextConfig      `json:"text" toml:"text"`
	Animation types.AnimationConfig `json:"animation" toml:"animation"`
}

// LoadConfig loads the configuration from a file. Files ending in .toml
// are read as TOML, anything else as JSON. Settings missing from the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Matrix: types.MatrixConfig{
			Width:  8,
			Height: 8,
			Snake:  true,
			Mode:   "grb",
			Line:   "GPIO18",
		},
		Transport: types.TransportConfig{
			Kinds:      []string{types.TransportTerminal},
			Brightness: 64,
			CellSize:   16,
			Power: types.PowerConfig{
				Chip:     "gpiochip0",
				Offset:   17,
				SettleMs: 50,
			},
		},
		Text: types.TextConfig{
			Message: "HELLO",
			Color:   "orange",
			SpeedMs: 100,
		},
		Animation: types.AnimationConfig{
			RefreshRate: 50,
			Lightness:   20,
			HueStep:     5,
		},
	}
}

// Validate checks the settings that would otherwise only fail at runtime
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.LedMatrix(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Transport.Kinds) == 0 {
		errs = append(errs, errors.New("no transport configured"))
	}
	for _, k := range c.Transport.Kinds {
		switch k {
		case types.TransportSPI, types.TransportWS281x, types.TransportTerminal,
			types.TransportPNG, types.TransportDiscard:
		case types.TransportWebSocket:
			if c.Transport.URL == "" {
				errs = append(errs, errors.New("websocket transport needs a url"))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown transport %q", k))
		}
	}
	if b := c.Transport.Brightness; b < 0 || b > 255 {
		errs = append(errs, fmt.Errorf("brightness must be between 0 and 255, got %d", b))
	}
	if _, err := ledmatrix.ParseColor(c.Text.Color); err != nil {
		errs = append(errs, err)
	}
	if c.Text.SpeedMs < 0 {
		errs = append(errs, fmt.Errorf("text speed must not be negative, got %d", c.Text.SpeedMs))
	}
	if c.Animation.RefreshRate <= 0 {
		errs = append(errs, fmt.Errorf("refresh rate must be positive, got %d", c.Animation.RefreshRate))
	}
	return errors.Join(errs...)
}

// LedMatrix converts the matrix section into a ledmatrix.Config
func (c *Config) LedMatrix() (ledmatrix.Config, error) {
	mode, err := ledmatrix.ParseChannelMode(c.Matrix.Mode)
	if err != nil {
		return ledmatrix.Config{}, err
	}
	if c.Matrix.Width <= 0 || c.Matrix.Height <= 0 {
		return ledmatrix.Config{}, fmt.Errorf("%w: %dx%d", ledmatrix.ErrInvalidDimensions, c.Matrix.Width, c.Matrix.Height)
	}
	return ledmatrix.Config{
		Width:        c.Matrix.Width,
		Height:       c.Matrix.Height,
		Snake:        c.Matrix.Snake,
		Row0AtBottom: c.Matrix.Row0AtBottom,
		Mode:         mode,
		Line:         ledmatrix.HardwareLine(c.Matrix.Line),
	}, nil
}

// TextColor returns the parsed text color
func (c *Config) TextColor() (ledmatrix.Color, error) {
	return ledmatrix.ParseColor(c.Text.Color)
}

// Char returns the text message for single character mode. It must be
// exactly one character.
func (c *Config) Char() (string, error) {
	if n := utf8.RuneCountInString(c.Text.Message); n != 1 {
		return "", fmt.Errorf("char mode needs a single character, got %q (%d characters)", c.Text.Message, n)
	}
	return c.Text.Message, nil
}

// TextSpeed returns the pause between scroll steps
func (c *Config) TextSpeed() time.Duration {
	return time.Duration(c.Text.SpeedMs) * time.Millisecond
}

// PowerSettle returns the pause after switching the supply on
func (c *Config) PowerSettle() time.Duration {
	return time.Duration(c.Transport.Power.SettleMs) * time.Millisecond
}

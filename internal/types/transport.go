package types

// Transport kinds
const (
	TransportSPI       = "spi"
	TransportWS281x    = "ws281x"
	TransportWebSocket = "websocket"
	TransportTerminal  = "terminal"
	TransportPNG       = "png"
	TransportDiscard   = "discard"
)

// TransportConfig selects where frames go. Every listed kind receives
// every frame.
type TransportConfig struct {
	Kinds []string `json:"kinds" toml:"kinds"`

	// ws281x
	Brightness int `json:"brightness" toml:"brightness"`

	// websocket
	URL string `json:"url" toml:"url"`

	// png
	PNGPath  string `json:"png_path" toml:"png_path"`
	CellSize int    `json:"cell_size" toml:"cell_size"`

	Power PowerConfig `json:"power" toml:"power"`
}

// PowerConfig represents the GPIO line switching the LED supply
type PowerConfig struct {
	Enabled  bool   `json:"enabled" toml:"enabled"`
	Chip     string `json:"chip" toml:"chip"`
	Offset   int    `json:"offset" toml:"offset"`
	SettleMs int    `json:"settle_ms" toml:"settle_ms"`
}

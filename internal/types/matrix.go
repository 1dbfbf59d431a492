package types

// MatrixConfig describes the physical matrix
type MatrixConfig struct {
	Width        int    `json:"width" toml:"width"`
	Height       int    `json:"height" toml:"height"`
	Snake        bool   `json:"snake" toml:"snake"`
	Row0AtBottom bool   `json:"row0_at_bottom" toml:"row0_at_bottom"`
	Mode         string `json:"mode" toml:"mode"`
	Line         string `json:"line" toml:"line"`
}

// TextConfig represents the configuration for scrolling text
type TextConfig struct {
	Message string `json:"message" toml:"message"`
	Color   string `json:"color" toml:"color"`
	// SpeedMs is the pause between scroll steps
	SpeedMs int `json:"speed_ms" toml:"speed_ms"`
	Loop    bool `json:"loop" toml:"loop"`
}

// AnimationConfig represents the configuration for the rainbow demo
type AnimationConfig struct {
	RefreshRate int `json:"refresh_rate_ms" toml:"refresh_rate_ms"`
	Lightness   int `json:"lightness" toml:"lightness"`
	// HueStep is how far the hue advances per frame, in degrees
	HueStep int `json:"hue_step" toml:"hue_step"`
}

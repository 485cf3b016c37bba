package svgbot

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the content of a session configuration file.
type Config struct {
	ContinueOnDeviceError bool              `toml:"continue_on_device_error"`
	Device                DeviceConfig      `toml:"device"`
	Calibration           CalibrationConfig `toml:"calibration"`

	// Destination skips calibration when set.
	Destination *Area `toml:"destination"`
	// Source overrides the area found in the document.
	Source *Area `toml:"source"`
}

// DeviceConfig selects the pointer device.
type DeviceConfig struct {
	// Command is the device command prefix, split like a shell would.
	Command string `toml:"command"`
	Button  int    `toml:"button"`
}

// CalibrationConfig controls interactive calibration.
type CalibrationConfig struct {
	// Countdown is the number of seconds counted down before each corner is
	// sampled.
	Countdown int `toml:"countdown"`
}

// Area is a rect given by its edges.
type Area struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// Rect validates the edges and returns the rect they enclose.
func (a Area) Rect() (Rect, error) {
	return RectFromCorners(a.Left, a.Top, a.Right, a.Bottom)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Device:      DeviceConfig{Command: "xdotool", Button: 1},
		Calibration: CalibrationConfig{Countdown: 3},
	}
}

// ParseConfig decodes a TOML configuration on top of the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes the configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that decoding alone can't.
func (c Config) Validate() error {
	if c.Device.Command == "" {
		return fmt.Errorf("device command must not be empty")
	}
	if c.Device.Button < 1 {
		return fmt.Errorf("device button must be at least 1, got %d", c.Device.Button)
	}
	if c.Calibration.Countdown < 0 {
		return fmt.Errorf("calibration countdown must not be negative, got %d", c.Calibration.Countdown)
	}
	if c.Destination != nil {
		if _, err := c.Destination.Rect(); err != nil {
			return fmt.Errorf("destination: %w", err)
		}
	}
	if c.Source != nil {
		if _, err := c.Source.Rect(); err != nil {
			return fmt.Errorf("source: %w", err)
		}
	}
	return nil
}

// ParseArea parses "left,top,right,bottom".
func ParseArea(s string) (Area, error) {
	nums, err := parseNumberList(s)
	if err != nil {
		return Area{}, err
	}
	if len(nums) != 4 {
		return Area{}, fmt.Errorf("area %q needs 4 numbers, got %d", s, len(nums))
	}
	a := Area{Left: nums[0], Top: nums[1], Right: nums[2], Bottom: nums[3]}
	if _, err := a.Rect(); err != nil {
		return Area{}, err
	}
	return a, nil
}

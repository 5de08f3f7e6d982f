// Package config loads the sandbox settings from an optional TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tile-sandbox/internal/color"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// AppName names the state directory.
const AppName = "tile-sandbox"

// Duration is a time.Duration written as a Go duration string ("16ms").
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Colors holds the configurable colours as hex strings.
type Colors struct {
	Clear  string `toml:"clear"`
	Glyph  string `toml:"glyph"`
	Player string `toml:"player"`
}

// Config is the full sandbox configuration.
type Config struct {
	Width          int      `toml:"width"`
	Height         int      `toml:"height"`
	Scale          int      `toml:"scale"`
	FrameInterval  Duration `toml:"frame_interval"`
	ReportInterval Duration `toml:"report_interval"`
	ShimmerSpeed   float64  `toml:"shimmer_speed"`
	PlayerGlyph    string   `toml:"player_glyph"`
	TextX          int      `toml:"text_x"`
	TextY          int      `toml:"text_y"`
	Colors         Colors   `toml:"colors"`
}

// Palette is Colors parsed into colour values.
type Palette struct {
	Clear  color.Color
	Glyph  color.Color
	Player color.Color
}

// Default returns the built-in configuration: an 80×24 grid at scale 35,
// ~60 frames per second, averages reported every second.
func Default() Config {
	return Config{
		Width:          80,
		Height:         24,
		Scale:          35,
		FrameInterval:  Duration(16 * time.Millisecond),
		ReportInterval: Duration(time.Second),
		PlayerGlyph:    "@",
		TextX:          10,
		TextY:          0,
		Colors: Colors{
			Clear:  "#000000",
			Glyph:  "#f0f0f0",
			Player: "#ff0000",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode decodes TOML data onto cfg, leaving absent keys untouched.
// Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate reports every problem that would prevent building the grid.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%w: scale %d must be positive", ErrInvalid, c.Scale))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: frame_interval must be positive", ErrInvalid))
	}
	if c.ReportInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: report_interval must be positive", ErrInvalid))
	}
	if c.PlayerGlyph == "" {
		errs = append(errs, fmt.Errorf("%w: player_glyph is empty", ErrInvalid))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Palette parses the configured colours.
func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Clear, err = color.ParseHex(c.Colors.Clear); err != nil {
		return Palette{}, fmt.Errorf("colors.clear: %w", err)
	}
	if p.Glyph, err = color.ParseHex(c.Colors.Glyph); err != nil {
		return Palette{}, fmt.Errorf("colors.glyph: %w", err)
	}
	if p.Player, err = color.ParseHex(c.Colors.Player); err != nil {
		return Palette{}, fmt.Errorf("colors.player: %w", err)
	}
	return p, nil
}

// LogPath returns where the interactive binary writes its log.
// Follows the XDG Base Directory spec: $XDG_STATE_HOME/tile-sandbox,
// defaulting to ~/.local/state/tile-sandbox.
func LogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, AppName, "sandbox.log"), nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/trajectory/internal/animation"
	"github.com/roach88/trajectory/internal/kinematics"
	"github.com/roach88/trajectory/internal/render"
)

// Config holds every tunable of the tool.
type Config struct {
	Gravity   float64         `yaml:"gravity" json:"gravity"`
	Samples   int             `yaml:"samples" json:"samples"`
	Launch    *LaunchConfig   `yaml:"launch,omitempty" json:"launch,omitempty"`
	Plot      PlotConfig      `yaml:"plot" json:"plot"`
	Animation AnimationConfig `yaml:"animation" json:"animation"`
}

// LaunchConfig is a launch given with the angle in degrees.
type LaunchConfig struct {
	Speed    float64 `yaml:"speed" json:"speed"`
	AngleDeg float64 `yaml:"angle_deg" json:"angle_deg"`
}

// PlotConfig holds the axis bounds (km) and raster settings.
type PlotConfig struct {
	XMin  float64 `yaml:"x_min" json:"x_min"`
	XMax  float64 `yaml:"x_max" json:"x_max"`
	YMin  float64 `yaml:"y_min" json:"y_min"`
	YMax  float64 `yaml:"y_max" json:"y_max"`
	Width float64 `yaml:"width" json:"width"` // inches, 0 = renderer default
	DPI   int     `yaml:"dpi" json:"dpi"`
}

// AnimationConfig holds the animation timing.
type AnimationConfig struct {
	Duration    float64 `yaml:"duration" json:"duration"`
	FrameRate   float64 `yaml:"frame_rate" json:"frame_rate"`
	Compression float64 `yaml:"compression" json:"compression"`
}

// Default returns the built-in settings.
func Default() Config {
	b := render.DefaultBounds()
	s := animation.DefaultSettings()
	return Config{
		Gravity: float64(kinematics.StandardGravity),
		Samples: kinematics.DefaultSamples,
		Plot: PlotConfig{
			XMin: b.XMin, XMax: b.XMax,
			YMin: b.YMin, YMax: b.YMax,
			DPI: 96,
		},
		Animation: AnimationConfig{
			Duration:    s.Duration,
			FrameRate:   s.FrameRate,
			Compression: s.Compression,
		},
	}
}

// Load reads path, decodes it over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Code: ErrCodeRead, Message: fmt.Sprintf("failed to read config file: %v", err)}
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML from r over the defaults and validates the result.
// An empty document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &Error{Code: ErrCodeParse, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GravityValue returns the configured gravity.
func (c Config) GravityValue() kinematics.Gravity {
	return kinematics.Gravity(c.Gravity)
}

// Bounds returns the configured axis bounds.
func (c Config) Bounds() render.Bounds {
	return render.Bounds{XMin: c.Plot.XMin, XMax: c.Plot.XMax, YMin: c.Plot.YMin, YMax: c.Plot.YMax}
}

// AnimationSettings returns the configured animation timing.
func (c Config) AnimationSettings() animation.Settings {
	return animation.Settings{
		Duration:    c.Animation.Duration,
		FrameRate:   c.Animation.FrameRate,
		Compression: c.Animation.Compression,
		Gravity:     c.GravityValue(),
	}
}

// LaunchValue returns the configured launch, if any.
func (c Config) LaunchValue() (kinematics.Launch, bool) {
	if c.Launch == nil {
		return kinematics.Launch{}, false
	}
	return kinematics.FromDegrees(c.Launch.Speed, c.Launch.AngleDeg), true
}

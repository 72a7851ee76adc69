package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/trajectory/internal/animation"
	"github.com/roach88/trajectory/internal/kinematics"
)

// Scenario defines a conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Launch is the speed (m/s) and angle (degrees).
	Launch LaunchSpec `yaml:"launch"`

	// Gravity overrides standard gravity when non-zero.
	Gravity float64 `yaml:"gravity,omitempty"`

	// Samples overrides the static plot resolution when non-zero.
	Samples int `yaml:"samples,omitempty"`

	// Animation overrides the default animation timing field by field.
	Animation *AnimationSpec `yaml:"animation,omitempty"`

	// Assertions validate the computed flight.
	Assertions []Assertion `yaml:"assertions"`
}

// LaunchSpec is a launch with the angle in degrees.
type LaunchSpec struct {
	Speed    float64 `yaml:"speed"`
	AngleDeg float64 `yaml:"angle_deg"`
}

// AnimationSpec overrides animation timing. Zero fields keep defaults.
type AnimationSpec struct {
	Duration    float64 `yaml:"duration,omitempty"`
	FrameRate   float64 `yaml:"frame_rate,omitempty"`
	Compression float64 `yaml:"compression,omitempty"`
}

// Assertion checks one property of the run.
type Assertion struct {
	// Type selects the check, see the assertion type constants.
	Type string `yaml:"type"`

	// Value is the expected scalar (flight_duration, range).
	Value *float64 `yaml:"value,omitempty"`

	// X and Y are the expected coordinates (apex in m, frame_marker in km).
	X *float64 `yaml:"x,omitempty"`
	Y *float64 `yaml:"y,omitempty"`

	// Frame is the frame index (frame_marker, frame_label).
	Frame int `yaml:"frame,omitempty"`

	// Count is the expected count (sample_count, animation_samples, frame_count).
	Count int `yaml:"count,omitempty"`

	// Label is the expected label text (frame_label).
	Label string `yaml:"label,omitempty"`

	// Tolerance is the absolute tolerance for float comparisons.
	// Zero means DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// DefaultTolerance applies when an assertion sets none.
const DefaultTolerance = 1e-6

// Assertion type constants.
const (
	AssertFlightDuration   = "flight_duration"
	AssertApex             = "apex"
	AssertRange            = "range"
	AssertAboveGround      = "above_ground"
	AssertSampleCount      = "sample_count"
	AssertAnimationSamples = "animation_samples"
	AssertFrameCount       = "frame_count"
	AssertFrameMarker      = "frame_marker"
	AssertFrameLabel       = "frame_label"
)

// LaunchValue converts the launch spec to radians.
func (s *Scenario) LaunchValue() kinematics.Launch {
	return kinematics.FromDegrees(s.Launch.Speed, s.Launch.AngleDeg)
}

// GravityValue returns the scenario gravity or standard gravity.
func (s *Scenario) GravityValue() kinematics.Gravity {
	if s.Gravity == 0 {
		return kinematics.StandardGravity
	}
	return kinematics.Gravity(s.Gravity)
}

// SampleCount returns the static plot resolution.
func (s *Scenario) SampleCount() int {
	if s.Samples == 0 {
		return kinematics.DefaultSamples
	}
	return s.Samples
}

// AnimationSettings merges the overrides into the default settings.
func (s *Scenario) AnimationSettings() animation.Settings {
	settings := animation.DefaultSettings()
	settings.Gravity = s.GravityValue()
	if s.Animation == nil {
		return settings
	}
	if s.Animation.Duration != 0 {
		settings.Duration = s.Animation.Duration
	}
	if s.Animation.FrameRate != 0 {
		settings.FrameRate = s.Animation.FrameRate
	}
	if s.Animation.Compression != 0 {
		settings.Compression = s.Animation.Compression
	}
	return settings
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	if s.Gravity < 0 {
		return fmt.Errorf("gravity must be positive")
	}
	if s.Samples < 0 {
		return fmt.Errorf("samples must be non-negative")
	}
	if a := s.Animation; a != nil && (a.Duration < 0 || a.FrameRate < 0 || a.Compression < 0) {
		return fmt.Errorf("animation timing must be positive")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}
	if a.Tolerance < 0 {
		return fmt.Errorf("assertions[%d]: tolerance must be non-negative", index)
	}

	switch a.Type {
	case AssertFlightDuration, AssertRange:
		if a.Value == nil {
			return fmt.Errorf("assertions[%d]: value is required for %s", index, a.Type)
		}
	case AssertApex:
		if a.X == nil && a.Y == nil {
			return fmt.Errorf("assertions[%d]: x or y is required for apex", index)
		}
	case AssertAboveGround:
	case AssertSampleCount, AssertAnimationSamples, AssertFrameCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertFrameMarker:
		if a.X == nil || a.Y == nil {
			return fmt.Errorf("assertions[%d]: x and y are required for frame_marker", index)
		}
		if a.Frame < 0 {
			return fmt.Errorf("assertions[%d]: frame must be non-negative", index)
		}
	case AssertFrameLabel:
		if a.Label == "" {
			return fmt.Errorf("assertions[%d]: label is required for frame_label", index)
		}
		if a.Frame < 0 {
			return fmt.Errorf("assertions[%d]: frame must be non-negative", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/trajectory/internal/animation"
	"github.com/roach88/trajectory/internal/kinematics"
	"github.com/roach88/trajectory/internal/snapshot"
)

// Run executes a scenario and returns the result.
//
// The static trajectory and the animation are built exactly as the
// renderers build them, then every assertion is evaluated in order.
// Failed assertions are collected in Result.Errors; Run only returns an
// error when the scenario cannot be executed at all.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, nil)
}

// RunWithLogger is Run with debug logging of each assertion.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	f, err := newFlight(scenario)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	result.Summary = f.summary(scenario.Name)

	for i, a := range scenario.Assertions {
		if aerr := evaluateAssertion(a, f); aerr != nil {
			logger.Debug("assertion failed",
				"scenario", scenario.Name,
				"index", i,
				"type", a.Type,
				"expected", aerr.Expected,
				"actual", aerr.Actual)
			result.AddError(fmt.Sprintf("assertion %d (%s) failed: %s", i, a.Type, aerr.Error()))
			continue
		}
		logger.Debug("assertion passed", "scenario", scenario.Name, "index", i, "type", a.Type)
	}
	return result, nil
}

// flight is everything assertions are evaluated against.
type flight struct {
	launch      kinematics.Launch
	gravity     kinematics.Gravity
	static      kinematics.Trajectory
	animation   *animation.Animation
	fingerprint string
}

func newFlight(s *Scenario) (*flight, error) {
	l := s.LaunchValue()
	g := s.GravityValue()
	static := kinematics.Build(l, g, s.SampleCount(), kinematics.MetersPerKilometer)

	fp, err := snapshot.Fingerprint(static)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return &flight{
		launch:      l,
		gravity:     g,
		static:      static,
		animation:   animation.New(l, s.AnimationSettings()),
		fingerprint: fp,
	}, nil
}

func (f *flight) summary(name string) Summary {
	sum := Summary{
		Name:             name,
		Speed:            f.launch.Speed,
		AngleDeg:         f.launch.Degrees(),
		Gravity:          float64(f.gravity),
		FlightDuration:   kinematics.FlightDuration(f.launch, f.gravity),
		Apex:             kinematics.Apex(f.launch, f.gravity),
		Range:            kinematics.Range(f.launch, f.gravity),
		Samples:          f.static.Len(),
		AnimationSamples: f.animation.Trajectory.Len(),
		Frames:           f.animation.TotalFrames(),
		Fingerprint:      f.fingerprint,
	}
	if sum.Frames > 0 {
		sum.FirstLabel = f.animation.Label(0)
		last := f.animation.Frame(sum.Frames - 1)
		sum.LastLabel = last.Label
		if last.HasMarker {
			marker := last.Marker
			sum.FinalMarker = &marker
		}
	}
	return sum
}

package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func howitzer(assertions ...Assertion) *Scenario {
	return &Scenario{
		Name:        "howitzer",
		Description: "2 km/s at 45 degrees",
		Launch:      LaunchSpec{Speed: 2000, AngleDeg: 45},
		Assertions:  assertions,
	}
}

func TestRun_NilScenario(t *testing.T) {
	_, err := Run(nil)
	require.Error(t, err)
}

func TestRun_Testdata(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			scenario, err := LoadScenario(path)
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_Summary(t *testing.T) {
	result, err := Run(howitzer(Assertion{Type: AssertAboveGround}))
	require.NoError(t, err)

	s := result.Summary
	assert.Equal(t, "howitzer", s.Name)
	assert.InDelta(t, 45.0, s.AngleDeg, 1e-9)
	assert.InDelta(t, 288.3208, s.FlightDuration, 1e-4)
	assert.InDelta(t, 101936.799, s.Apex.Y, 1e-3)
	assert.InDelta(t, 407747.197, s.Range, 1e-3)
	assert.Equal(t, 100, s.Samples)
	assert.Equal(t, 23, s.AnimationSamples)
	assert.Equal(t, 120, s.Frames)
	assert.Equal(t, "t=0 sec", s.FirstLabel)
	assert.Equal(t, "t=1488 sec", s.LastLabel)
	require.NotNil(t, s.FinalMarker)
	assert.InDelta(t, 407.747197, s.FinalMarker.X, 1e-6)
	assert.Len(t, s.Fingerprint, 64)
}

func TestRun_FingerprintDeterministic(t *testing.T) {
	first, err := Run(howitzer(Assertion{Type: AssertAboveGround}))
	require.NoError(t, err)
	second, err := Run(howitzer(Assertion{Type: AssertAboveGround}))
	require.NoError(t, err)

	assert.Equal(t, first.Summary.Fingerprint, second.Summary.Fingerprint)
}

func TestRun_FailingAssertions(t *testing.T) {
	result, err := Run(howitzer(
		Assertion{Type: AssertFlightDuration, Value: ptr(100), Tolerance: 0.1},
		Assertion{Type: AssertFrameCount, Count: 120},
		Assertion{Type: AssertSampleCount, Count: 7},
		Assertion{Type: AssertFrameLabel, Frame: 1, Label: "t=0 min"},
	))
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "assertion 0 (flight_duration) failed")
	assert.Contains(t, result.Errors[1], "assertion 2 (sample_count) failed: expected 7, got 100")
	assert.Contains(t, result.Errors[2], `expected frame 1 label "t=0 min", got "t=12 sec"`)
}

func TestRun_FrameOutOfRange(t *testing.T) {
	result, err := Run(howitzer(
		Assertion{Type: AssertFrameMarker, Frame: 120, X: ptr(0), Y: ptr(0)},
	))
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "120 frames")
}

func TestRun_NoMarker(t *testing.T) {
	// Flight too short for a single animation sample.
	scenario := &Scenario{
		Name:        "short_hop",
		Description: "lands before the first sample",
		Launch:      LaunchSpec{Speed: 10, AngleDeg: 45},
		Assertions: []Assertion{
			{Type: AssertAnimationSamples, Count: 0},
			{Type: AssertFrameMarker, Frame: 0, X: ptr(0), Y: ptr(0)},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "no marker")
	assert.Nil(t, result.Summary.FinalMarker)
}

func TestRun_ApexSingleCoordinate(t *testing.T) {
	result, err := Run(howitzer(
		Assertion{Type: AssertApex, X: ptr(203873.598), Tolerance: 0.01},
	))
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestAssertionError_Error(t *testing.T) {
	err := &AssertionError{Type: AssertRange, Expected: "10 ± 0.1", Actual: "12"}
	assert.Equal(t, "expected 10 ± 0.1, got 12", err.Error())
}

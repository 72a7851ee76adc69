package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/trajectory/internal/snapshot"
)

// SnapshotMap converts a summary to its canonical map form for golden
// comparison. The fingerprint is left out so that golden files stay
// readable; it is covered by the snapshot package.
func SnapshotMap(s Summary) map[string]any {
	m := map[string]any{
		"scenario_name": s.Name,
		"launch": map[string]any{
			"speed":     s.Speed,
			"angle_deg": s.AngleDeg,
		},
		"gravity":           s.Gravity,
		"flight_duration":   s.FlightDuration,
		"apex":              s.Apex,
		"range":             s.Range,
		"samples":           s.Samples,
		"animation_samples": s.AnimationSamples,
		"frames":            s.Frames,
	}
	if s.FirstLabel != "" {
		m["first_label"] = s.FirstLabel
	}
	if s.LastLabel != "" {
		m["last_label"] = s.LastLabel
	}
	// The landing height is a rounding residue, only the distance is stable.
	if s.FinalMarker != nil {
		m["final_marker_x"] = s.FinalMarker.X
	}
	return m
}

// Snapshot returns the canonical JSON of a result's summary.
func Snapshot(result *Result) ([]byte, error) {
	return snapshot.Marshal(SnapshotMap(result.Summary))
}

// RunWithGolden executes a scenario and compares its summary against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the summary doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := Snapshot(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}

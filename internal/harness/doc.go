// Package harness runs trajectory conformance scenarios.
//
// A scenario names launch parameters and a list of assertions about the
// resulting flight and animation. The harness computes everything through
// the same code paths the renderers use and checks each assertion.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: howitzer_45deg
//	description: "2 km/s shell at 45 degrees"
//	launch:
//	  speed: 2000
//	  angle_deg: 45
//	gravity: 9.81          # optional
//	samples: 100           # optional, static plot resolution
//	animation:             # optional, defaults 5 s / 24 fps / 300x
//	  duration: 5
//	  frame_rate: 24
//	  compression: 300
//	assertions:
//	  - type: flight_duration
//	    value: 288.32
//	    tolerance: 0.01
//	  - type: frame_marker
//	    frame: 119
//	    x: 407.75
//	    y: 0
//	    tolerance: 0.01
//
// # Assertion Types
//
//   - flight_duration: flight time in seconds equals value
//   - apex: highest point (x, y) in metres
//   - range: landing distance in metres equals value
//   - above_ground: no static sample dips below -tolerance
//   - sample_count: static trajectory has count samples
//   - animation_samples: animation trajectory has count samples
//   - frame_count: animation runs for count frames
//   - frame_marker: marker of frame sits at (x, y) km
//   - frame_label: label of frame equals label
//
// # Golden Snapshots
//
// RunWithGolden compares a canonical JSON summary of the run against
// testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness

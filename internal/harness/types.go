package harness

import "github.com/roach88/trajectory/internal/kinematics"

// Summary captures the computed flight a scenario is checked against.
// Distances are in metres except FinalMarker, which is in kilometres like
// every frame marker.
type Summary struct {
	Name             string            `json:"name"`
	Speed            float64           `json:"speed"`
	AngleDeg         float64           `json:"angle_deg"`
	Gravity          float64           `json:"gravity"`
	FlightDuration   float64           `json:"flight_duration"`
	Apex             kinematics.Point  `json:"apex"`
	Range            float64           `json:"range"`
	Samples          int               `json:"samples"`
	AnimationSamples int               `json:"animation_samples"`
	Frames           int               `json:"frames"`
	FirstLabel       string            `json:"first_label,omitempty"`
	LastLabel        string            `json:"last_label,omitempty"`
	FinalMarker      *kinematics.Point `json:"final_marker,omitempty"`
	Fingerprint      string            `json:"fingerprint"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every assertion holds.
	Pass bool `json:"pass"`

	// Summary holds the computed flight.
	Summary Summary `json:"summary"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

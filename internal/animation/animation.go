package animation

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/roach88/trajectory/internal/kinematics"
)

// Default animation settings.
const (
	DefaultDuration    = 5.0   // wall-clock seconds
	DefaultFrameRate   = 24.0  // frames per wall-clock second
	DefaultCompression = 300.0 // simulated seconds per wall-clock second
)

// Settings controls timing of an animation.
type Settings struct {
	Duration    float64            `json:"duration" yaml:"duration"`
	FrameRate   float64            `json:"frame_rate" yaml:"frame_rate"`
	Compression float64            `json:"compression" yaml:"compression"`
	Gravity     kinematics.Gravity `json:"gravity" yaml:"gravity"`
}

// DefaultSettings returns 5 s at 24 fps with 300× time compression under
// standard gravity.
func DefaultSettings() Settings {
	return Settings{
		Duration:    DefaultDuration,
		FrameRate:   DefaultFrameRate,
		Compression: DefaultCompression,
		Gravity:     kinematics.StandardGravity,
	}
}

// FrameState is everything a host needs to draw one frame.
type FrameState struct {
	Index     int                `json:"index"`
	Path      []kinematics.Point `json:"path"`   // samples drawn so far, km
	Marker    kinematics.Point   `json:"marker"` // projectile position, km
	HasMarker bool               `json:"has_marker"`
	Elapsed   float64            `json:"elapsed"` // simulated seconds
	Label     string             `json:"label"`
}

// Animation is a sampled flight plus its timing.
type Animation struct {
	Launch     kinematics.Launch
	Settings   Settings
	Trajectory kinematics.Trajectory
}

// SampleCount returns floor(flightDuration · frameRate / compression),
// never below zero.
func SampleCount(flightDuration, frameRate, compression float64) int {
	n := math.Floor(flightDuration * frameRate / compression)
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// New samples the flight for l under s, rescaled to kilometres.
func New(l kinematics.Launch, s Settings) *Animation {
	n := SampleCount(kinematics.FlightDuration(l, s.Gravity), s.FrameRate, s.Compression)
	return &Animation{
		Launch:     l,
		Settings:   s,
		Trajectory: kinematics.Build(l, s.Gravity, n, kinematics.MetersPerKilometer),
	}
}

// TotalFrames returns floor(duration · frameRate).
func (a *Animation) TotalFrames() int {
	n := math.Floor(a.Settings.Duration * a.Settings.FrameRate)
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// Interval returns the wall-clock time between frames.
func (a *Animation) Interval() time.Duration {
	if a.Settings.FrameRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / a.Settings.FrameRate)
}

// Elapsed returns the simulated time shown at frame i.
func (a *Animation) Elapsed(i int) float64 {
	return a.Settings.Compression * float64(i) / a.Settings.FrameRate
}

// Label formats the elapsed-time text for frame i.
func (a *Animation) Label(i int) string {
	return fmt.Sprintf("t=%.0f sec", a.Elapsed(i))
}

// Frame returns the state of frame i. The path holds every sample before
// min(i, N-1) and the marker sits on that sample, so frames past the last
// sample freeze at landing.
func (a *Animation) Frame(i int) FrameState {
	if i < 0 {
		i = 0
	}
	st := FrameState{
		Index:   i,
		Path:    []kinematics.Point{},
		Elapsed: a.Elapsed(i),
		Label:   a.Label(i),
	}

	pts := a.Trajectory.Points
	if len(pts) == 0 {
		return st
	}
	last := min(i, len(pts)-1)
	st.Path = slices.Clone(pts[:last])
	st.Marker = pts[last]
	st.HasMarker = true
	return st
}

// Frames returns the states of every frame in order.
func (a *Animation) Frames() []FrameState {
	total := a.TotalFrames()
	states := make([]FrameState, total)
	for i := range states {
		states[i] = a.Frame(i)
	}
	return states
}

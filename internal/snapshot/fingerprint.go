package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/trajectory/internal/animation"
	"github.com/roach88/trajectory/internal/kinematics"
)

// Domain prefixes keep fingerprints of different kinds from colliding.
const (
	DomainTrajectory = "trajectory/points/v1"
	DomainFrame      = "trajectory/frame/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Trajectory converts a trajectory to its canonical map form.
func Trajectory(t kinematics.Trajectory) map[string]any {
	return map[string]any{
		"speed":    t.Launch.Speed,
		"angle":    t.Launch.Angle,
		"gravity":  float64(t.Gravity),
		"duration": t.Duration,
		"scale":    t.Scale,
		"times":    t.Times,
		"points":   t.Points,
	}
}

// Frame converts a frame state to its canonical map form. The marker is
// omitted when the frame has none.
func Frame(st animation.FrameState) map[string]any {
	m := map[string]any{
		"index": st.Index,
		"label": st.Label,
		"path":  st.Path,
	}
	if st.HasMarker {
		m["marker"] = st.Marker
	}
	return m
}

// Frames converts a sequence of frame states.
func Frames(states []animation.FrameState) []any {
	out := make([]any, len(states))
	for i, st := range states {
		out[i] = Frame(st)
	}
	return out
}

// Fingerprint returns the content hash of a trajectory's canonical form.
func Fingerprint(t kinematics.Trajectory) (string, error) {
	data, err := Marshal(Trajectory(t))
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainTrajectory, data), nil
}

// FrameFingerprint returns the content hash of a frame state.
func FrameFingerprint(st animation.FrameState) (string, error) {
	data, err := Marshal(Frame(st))
	if err != nil {
		return "", fmt.Errorf("FrameFingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainFrame, data), nil
}

// MustFingerprint is like Fingerprint but panics on error.
// Use only in tests or when inputs are known to be finite.
func MustFingerprint(t kinematics.Trajectory) string {
	fp, err := Fingerprint(t)
	if err != nil {
		panic(err)
	}
	return fp
}

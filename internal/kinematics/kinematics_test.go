package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightDuration_Scenario(t *testing.T) {
	l := Launch{Speed: 100, Angle: math.Pi / 4}

	T := FlightDuration(l, StandardGravity)
	assert.InDelta(t, 14.416, T, 1e-3)

	apex := PositionAt(T/2, l, StandardGravity)
	assert.InDelta(t, 254.842, apex.Y, 1e-3)
	assert.InDelta(t, 509.684, apex.X, 1e-3)
	assert.Equal(t, apex, Apex(l, StandardGravity))
}

func TestFlightDuration_ReturnsToGround(t *testing.T) {
	speeds := []float64{1, 10, 100, 2000}
	angles := []float64{0.01, math.Pi / 6, math.Pi / 4, math.Pi / 3, math.Pi / 2, 2.5, math.Pi - 0.01}
	gravities := []Gravity{1.62, StandardGravity, 24.79}

	for _, v := range speeds {
		for _, theta := range angles {
			for _, g := range gravities {
				l := Launch{Speed: v, Angle: theta}
				T := FlightDuration(l, g)
				require.Greater(t, T, 0.0)

				start := PositionAt(0, l, g)
				end := PositionAt(T, l, g)
				assert.Equal(t, 0.0, start.Y)
				scale := v * v / float64(g)
				assert.InDelta(t, 0, end.Y, 1e-9*scale, "v=%v theta=%v g=%v", v, theta, g)
			}
		}
	}
}

func TestFlightDuration_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, FlightDuration(Launch{Speed: 0, Angle: math.Pi / 4}, StandardGravity))
	assert.Equal(t, 0.0, FlightDuration(Launch{Speed: 100, Angle: 0}, StandardGravity))
	assert.InDelta(t, 0, FlightDuration(Launch{Speed: 100, Angle: math.Pi}, StandardGravity), 1e-12)
	assert.Less(t, FlightDuration(Launch{Speed: -100, Angle: math.Pi / 4}, StandardGravity), 0.0)
}

func TestPositions_NeverBelowGround(t *testing.T) {
	for _, theta := range []float64{0.1, 0.7, 1.2, 1.5, 2.0} {
		l := Launch{Speed: 350, Angle: theta}
		T := FlightDuration(l, StandardGravity)
		for _, p := range Positions(Linspace(0, T, 500), l, StandardGravity) {
			assert.GreaterOrEqual(t, p.Y, -1e-9*350*350)
		}
	}
}

func TestPositions_HorizontalMonotonic(t *testing.T) {
	l := Launch{Speed: 250, Angle: 1.1}
	T := FlightDuration(l, StandardGravity)
	pts := Positions(Linspace(0, T, 200), l, StandardGravity)
	for i := 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, pts[i].X, pts[i-1].X)
	}
}

func TestSymmetry_SupplementaryAngles(t *testing.T) {
	for _, theta := range []float64{0.2, math.Pi / 4, 1.0, 1.4} {
		a := Launch{Speed: 120, Angle: theta}
		b := Launch{Speed: 120, Angle: math.Pi - theta}

		assert.InDelta(t, FlightDuration(a, StandardGravity), FlightDuration(b, StandardGravity), 1e-9)
		assert.InDelta(t, Apex(a, StandardGravity).Y, Apex(b, StandardGravity).Y, 1e-9)
		// The supplementary launch travels backwards by the same distance.
		assert.InDelta(t, Range(a, StandardGravity), -Range(b, StandardGravity), 1e-9)
	}
}

func TestPositions_Idempotent(t *testing.T) {
	l := Launch{Speed: 2000, Angle: 0.9}
	ts := Linspace(0, FlightDuration(l, StandardGravity), 100)

	first := Positions(ts, l, StandardGravity)
	second := Positions(ts, l, StandardGravity)
	assert.Equal(t, first, second)
}

func TestFromDegrees(t *testing.T) {
	l := FromDegrees(10, 45)
	assert.InDelta(t, math.Pi/4, l.Angle, 1e-15)
	assert.InDelta(t, 45, l.Degrees(), 1e-12)
}

func TestRange(t *testing.T) {
	l := Launch{Speed: 100, Angle: math.Pi / 4}
	assert.InDelta(t, 100*100/9.81, Range(l, StandardGravity), 1e-9)
}

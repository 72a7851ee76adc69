package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/roach88/trajectory/internal/kinematics"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "expected %s, got %s", e.Expected, e.Actual)
	return buf.String()
}

// evaluateAssertion dispatches to the appropriate check based on type.
func evaluateAssertion(a Assertion, f *flight) *AssertionError {
	tol := a.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	switch a.Type {
	case AssertFlightDuration:
		return checkFloat(a.Type, *a.Value, kinematics.FlightDuration(f.launch, f.gravity), tol)
	case AssertRange:
		return checkFloat(a.Type, *a.Value, kinematics.Range(f.launch, f.gravity), tol)
	case AssertApex:
		return checkPoint(a, kinematics.Apex(f.launch, f.gravity), tol)
	case AssertAboveGround:
		return checkAboveGround(f.static, tol)
	case AssertSampleCount:
		return checkInt(a.Type, a.Count, f.static.Len())
	case AssertAnimationSamples:
		return checkInt(a.Type, a.Count, f.animation.Trajectory.Len())
	case AssertFrameCount:
		return checkInt(a.Type, a.Count, f.animation.TotalFrames())
	case AssertFrameMarker:
		if err := checkFrameIndex(a, f); err != nil {
			return err
		}
		st := f.animation.Frame(a.Frame)
		if !st.HasMarker {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("frame %d marker at (%g, %g)", a.Frame, *a.X, *a.Y),
				Actual:   "no marker (empty trajectory)",
			}
		}
		return checkPoint(a, st.Marker, tol)
	case AssertFrameLabel:
		if err := checkFrameIndex(a, f); err != nil {
			return err
		}
		if got := f.animation.Frame(a.Frame).Label; got != a.Label {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("frame %d label %q", a.Frame, a.Label),
				Actual:   fmt.Sprintf("%q", got),
			}
		}
		return nil
	default:
		return &AssertionError{
			Type:     a.Type,
			Expected: "known assertion type",
			Actual:   fmt.Sprintf("unknown type %q", a.Type),
		}
	}
}

func checkFloat(typ string, want, got, tol float64) *AssertionError {
	if math.Abs(got-want) <= tol {
		return nil
	}
	return &AssertionError{
		Type:     typ,
		Expected: fmt.Sprintf("%g ± %g", want, tol),
		Actual:   fmt.Sprintf("%g", got),
	}
}

func checkInt(typ string, want, got int) *AssertionError {
	if got == want {
		return nil
	}
	return &AssertionError{
		Type:     typ,
		Expected: fmt.Sprintf("%d", want),
		Actual:   fmt.Sprintf("%d", got),
	}
}

// checkPoint compares whichever coordinates the assertion names.
func checkPoint(a Assertion, got kinematics.Point, tol float64) *AssertionError {
	ok := true
	var want []string
	if a.X != nil {
		ok = ok && math.Abs(got.X-*a.X) <= tol
		want = append(want, fmt.Sprintf("x=%g", *a.X))
	}
	if a.Y != nil {
		ok = ok && math.Abs(got.Y-*a.Y) <= tol
		want = append(want, fmt.Sprintf("y=%g", *a.Y))
	}
	if ok {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%s ± %g", strings.Join(want, " "), tol),
		Actual:   fmt.Sprintf("x=%g y=%g", got.X, got.Y),
	}
}

func checkAboveGround(t kinematics.Trajectory, tol float64) *AssertionError {
	for i, p := range t.Points {
		if p.Y < -tol {
			return &AssertionError{
				Type:     AssertAboveGround,
				Expected: fmt.Sprintf("y >= -%g at every sample", tol),
				Actual:   fmt.Sprintf("sample %d at y=%g", i, p.Y),
			}
		}
	}
	return nil
}

func checkFrameIndex(a Assertion, f *flight) *AssertionError {
	total := f.animation.TotalFrames()
	if a.Frame < total {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("frame %d within animation", a.Frame),
		Actual:   fmt.Sprintf("%d frames", total),
	}
}

package kinematics

// MetersPerKilometer is the divisor that rescales metres to kilometres.
const MetersPerKilometer = 1000.0

// DefaultSamples is the static plot resolution.
const DefaultSamples = 100

// Trajectory is a sampled flight: the time grid and the matching positions
// divided by Scale.
type Trajectory struct {
	Launch   Launch    `json:"launch"`
	Gravity  Gravity   `json:"gravity"`
	Duration float64   `json:"duration"`
	Scale    float64   `json:"scale"`
	Times    []float64 `json:"times"`
	Points   []Point   `json:"points"`
}

// Build computes the flight duration, lays a grid of samples over it,
// evaluates the positions and divides them by scale. A scale of 0 is
// treated as 1.
func Build(l Launch, g Gravity, samples int, scale float64) Trajectory {
	if scale == 0 {
		scale = 1
	}
	duration := FlightDuration(l, g)
	ts := TimeGrid(duration, samples)
	pts := Positions(ts, l, g)
	for i := range pts {
		pts[i].X /= scale
		pts[i].Y /= scale
	}
	return Trajectory{
		Launch:   l,
		Gravity:  g,
		Duration: duration,
		Scale:    scale,
		Times:    ts,
		Points:   pts,
	}
}

// Len returns the number of samples.
func (t Trajectory) Len() int { return len(t.Points) }

// At returns sample i clamped to the last sample. The bool is false when
// the trajectory is empty.
func (t Trajectory) At(i int) (Point, bool) {
	n := len(t.Points)
	if n == 0 {
		return Point{}, false
	}
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return t.Points[i], true
}

// XY splits the points into separate coordinate slices.
func (t Trajectory) XY() (xs, ys []float64) {
	xs = make([]float64, len(t.Points))
	ys = make([]float64, len(t.Points))
	for i, p := range t.Points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

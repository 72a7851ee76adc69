package kinematics

import "math"

// Gravity is a gravitational acceleration in m/s².
type Gravity float64

// StandardGravity is the default gravitational acceleration.
const StandardGravity Gravity = 9.81

// Launch describes the initial conditions of a projectile.
type Launch struct {
	Speed float64 `json:"speed" yaml:"speed"` // initial speed, m/s
	Angle float64 `json:"angle" yaml:"angle"` // launch angle above horizontal, radians
}

// Degrees returns the launch angle in degrees.
func (l Launch) Degrees() float64 { return l.Angle * 180 / math.Pi }

// FromDegrees builds a Launch from a speed and an angle given in degrees.
func FromDegrees(speed, degrees float64) Launch {
	return Launch{Speed: speed, Angle: degrees * math.Pi / 180}
}

// Point is a (horizontal, vertical) displacement pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FlightDuration returns the time at which the projectile returns to its
// launch height: 2·v·sin(θ)/g.
func FlightDuration(l Launch, g Gravity) float64 {
	return 2 * l.Speed * math.Sin(l.Angle) / float64(g)
}

// PositionAt returns the displacement at time t.
func PositionAt(t float64, l Launch, g Gravity) Point {
	vx := l.Speed * math.Cos(l.Angle)
	vy := l.Speed * math.Sin(l.Angle)
	return Point{
		X: vx * t,
		Y: vy*t - float64(g)/2*t*t,
	}
}

// Positions returns one displacement per time sample. Samples are computed
// independently of each other.
func Positions(ts []float64, l Launch, g Gravity) []Point {
	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = PositionAt(t, l, g)
	}
	return pts
}

// Apex returns the highest point of the flight, reached at half the flight
// duration.
func Apex(l Launch, g Gravity) Point {
	return PositionAt(FlightDuration(l, g)/2, l, g)
}

// Range returns the horizontal distance covered when the projectile lands.
func Range(l Launch, g Gravity) float64 {
	return PositionAt(FlightDuration(l, g), l, g).X
}

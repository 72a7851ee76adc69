package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/roach88/trajectory/internal/kinematics"
)

// dotted is the dash pattern used for trajectory paths.
var dotted = []vg.Length{vg.Points(1), vg.Points(3)}

// pathColor matches the default first series colour of common plotting
// tools.
var pathColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Plot renders the full flight of l as a dotted curve on fixed kilometre
// axes.
func Plot(l kinematics.Launch, opts ...Option) (*Figure, error) {
	o := buildOptions(StaticWidth, opts)
	traj := kinematics.Build(l, o.Gravity, o.Samples, kinematics.MetersPerKilometer)
	o.Logger.Debug("static trajectory built",
		"speed", l.Speed,
		"angle_deg", l.Degrees(),
		"duration", traj.Duration,
		"samples", traj.Len())

	fig := newFigure(StaticTitle(l), o)
	// A single sample (zero-length flight) has no segment to draw.
	if traj.Len() >= 2 {
		line, err := pathLine(traj.Points)
		if err != nil {
			return nil, err
		}
		fig.Plot.Add(line)
	}
	fig.fixAxes(o.Bounds)
	return fig, nil
}

func pathLine(pts []kinematics.Point) (*plotter.Line, error) {
	line, err := plotter.NewLine(toXYs(pts))
	if err != nil {
		return nil, fmt.Errorf("building trajectory line: %w", err)
	}
	line.LineStyle.Dashes = dotted
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = pathColor
	return line, nil
}

func toXYs(pts []kinematics.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X = p.X
		xys[i].Y = p.Y
	}
	return xys
}

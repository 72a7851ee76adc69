package render

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/roach88/trajectory/internal/kinematics"
)

// Bounds are the fixed axis limits in kilometres.
type Bounds struct {
	XMin float64 `json:"x_min" yaml:"x_min"`
	XMax float64 `json:"x_max" yaml:"x_max"`
	YMin float64 `json:"y_min" yaml:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max"`
}

// DefaultBounds are x 0–1000 km and y 0–500 km.
func DefaultBounds() Bounds {
	return Bounds{XMin: 0, XMax: 1000, YMin: 0, YMax: 500}
}

// Span returns the width and height of the bounded region.
func (b Bounds) Span() (float64, float64) {
	return b.XMax - b.XMin, b.YMax - b.YMin
}

// AxesPoint maps axes fractions (0..1 on each axis) to data coordinates.
func (b Bounds) AxesPoint(fx, fy float64) kinematics.Point {
	w, h := b.Span()
	return kinematics.Point{X: b.XMin + fx*w, Y: b.YMin + fy*h}
}

// Axis labels shared by every figure.
const (
	XLabel = "x [km]"
	YLabel = "y [km]"
)

// Default figure widths.
const (
	StaticWidth = 12 * vg.Inch
	FrameWidth  = 4 * vg.Inch
)

// Figure is a configured plot plus the canvas size it is meant to be
// rendered at. Plot is the axis handle: callers may add to it before saving.
type Figure struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length
}

// Options configures rendering.
type Options struct {
	Gravity kinematics.Gravity
	Samples int
	Bounds  Bounds
	Width   vg.Length
	DPI     int
	Logger  *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithGravity overrides standard gravity.
func WithGravity(g kinematics.Gravity) Option { return func(o *Options) { o.Gravity = g } }

// WithSamples overrides the static plot resolution.
func WithSamples(n int) Option { return func(o *Options) { o.Samples = n } }

// WithBounds overrides the axis limits.
func WithBounds(b Bounds) Option { return func(o *Options) { o.Bounds = b } }

// WithWidth overrides the canvas width; the height follows the bounds.
func WithWidth(w vg.Length) Option { return func(o *Options) { o.Width = w } }

// WithDPI sets the raster resolution used for PNG frames and GIFs.
func WithDPI(dpi int) Option { return func(o *Options) { o.DPI = dpi } }

// WithLogger sets the logger used for export progress.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

func buildOptions(width vg.Length, opts []Option) Options {
	o := Options{
		Gravity: kinematics.StandardGravity,
		Samples: kinematics.DefaultSamples,
		Bounds:  DefaultBounds(),
		Width:   width,
		DPI:     vgimg.DefaultDPI,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// StaticTitle is the static figure title, e.g. "v=2000 m/s, θ=45.0°".
func StaticTitle(l kinematics.Launch) string {
	return fmt.Sprintf("v=%s m/s, θ=%.1f°", formatSpeed(l.Speed), l.Degrees())
}

// AnimationTitle is the animation title, e.g. "v=2000 m/s θ=45.0°".
func AnimationTitle(l kinematics.Launch) string {
	return fmt.Sprintf("v=%s m/s θ=%.1f°", formatSpeed(l.Speed), l.Degrees())
}

func formatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// newFigure configures an empty figure with its title and labels. The
// height is provisional until fixAxes proportions the canvas.
func newFigure(title string, o Options) *Figure {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	height := o.Width
	if xs, ys := o.Bounds.Span(); xs > 0 {
		height = vg.Length(float64(o.Width) * ys / xs)
	}
	return &Figure{Plot: p, Width: o.Width, Height: height}
}

// fixAxes pins the axis limits and sizes the canvas so one kilometre has
// the same length on both axes. gonum/plot widens the axes to fit data on
// every Add, so this must run after all plotters are added.
func (f *Figure) fixAxes(b Bounds) {
	f.Plot.X.Min, f.Plot.X.Max = b.XMin, b.XMax
	f.Plot.Y.Min, f.Plot.Y.Max = b.YMin, b.YMax
	f.fitAspect(b)
}

// fitAspect derives the height from the data area gonum/plot leaves after
// titles, ticks and labels. Glyph padding can shift with the canvas size,
// so the measurement is taken twice.
func (f *Figure) fitAspect(b Bounds) {
	xs, ys := b.Span()
	if xs <= 0 || ys <= 0 {
		return
	}
	for i := 0; i < 2; i++ {
		da := f.DataArea().Size()
		dataW := da.X
		if dataW <= 0 {
			return
		}
		padH := f.Height - da.Y
		f.Height = padH + vg.Length(float64(dataW)*ys/xs)
	}
}

// DataArea returns the rectangle the axes occupy on the figure's canvas.
func (f *Figure) DataArea() vg.Rectangle {
	c := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(1),
	)
	return f.Plot.DataCanvas(draw.New(c)).Rectangle
}

// Save writes the figure to path; the format follows the extension
// (.png, .svg, .pdf, .eps, .jpg, .tif).
func (f *Figure) Save(path string) error {
	if err := f.Plot.Save(f.Width, f.Height, path); err != nil {
		return fmt.Errorf("saving figure to %s: %w", path, err)
	}
	return nil
}

// WriteTo writes the figure in the named format ("png", "svg", "pdf", ...).
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	wt, err := f.Plot.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return 0, fmt.Errorf("preparing %s writer: %w", format, err)
	}
	return wt.WriteTo(w)
}

// Image rasterizes the figure at the given DPI.
func (f *Figure) Image(dpi int) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(dpi),
	)
	f.Plot.Draw(draw.New(c))
	return c.Image()
}

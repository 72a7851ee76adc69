package render

import (
	"bytes"
	"errors"
	"image/gif"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/roach88/trajectory/internal/animation"
	"github.com/roach88/trajectory/internal/kinematics"
)

var launch45 = kinematics.Launch{Speed: 2000, Angle: math.Pi / 4}

func smallAnimation() *animation.Animation {
	s := animation.DefaultSettings()
	s.Duration = 1
	s.FrameRate = 4
	s.Compression = 100
	return animation.New(launch45, s)
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "v=2000 m/s, θ=45.0°", StaticTitle(launch45))
	assert.Equal(t, "v=2000 m/s θ=45.0°", AnimationTitle(launch45))
	assert.Equal(t, "v=12.5 m/s, θ=30.0°", StaticTitle(kinematics.FromDegrees(12.5, 30)))
}

func TestPlot_Configuration(t *testing.T) {
	fig, err := Plot(launch45)
	require.NoError(t, err)

	p := fig.Plot
	assert.Equal(t, "v=2000 m/s, θ=45.0°", p.Title.Text)
	assert.Equal(t, XLabel, p.X.Label.Text)
	assert.Equal(t, YLabel, p.Y.Label.Text)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 1000.0, p.X.Max)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, 500.0, p.Y.Max)

	assert.Equal(t, StaticWidth, fig.Width)
	assertEqualAspect(t, fig, DefaultBounds())
}

// assertEqualAspect checks that one kilometre spans the same length on
// both axes of the rendered data area.
func assertEqualAspect(t *testing.T, fig *Figure, b Bounds) {
	t.Helper()
	xs, ys := b.Span()
	da := fig.DataArea().Size()
	require.Greater(t, float64(da.X), 0.0)
	require.Greater(t, float64(da.Y), 0.0)
	perKmX := float64(da.X) / xs
	perKmY := float64(da.Y) / ys
	assert.InEpsilon(t, perKmX, perKmY, 1e-3)
}

func TestPlot_DottedLine(t *testing.T) {
	line, err := pathLine([]kinematics.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, dotted, line.LineStyle.Dashes)
	assert.Len(t, line.XYs, 2)
}

func TestPlot_CustomBounds(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 100, YMin: 0, YMax: 100}
	fig, err := Plot(launch45, WithBounds(b), WithWidth(6*vg.Inch))
	require.NoError(t, err)
	assert.Equal(t, 100.0, fig.Plot.X.Max)
	assert.Equal(t, 100.0, fig.Plot.Y.Max)
	assertEqualAspect(t, fig, b)
}

func TestDrawFrame_EqualAspect(t *testing.T) {
	a := smallAnimation()
	fig, err := DrawFrame(a, a.Frame(2))
	require.NoError(t, err)
	assert.Equal(t, FrameWidth, fig.Width)
	assertEqualAspect(t, fig, DefaultBounds())
}

func TestPlot_ZeroSpeed(t *testing.T) {
	fig, err := Plot(kinematics.Launch{Speed: 0, Angle: math.Pi / 4})
	require.NoError(t, err)
	assert.Equal(t, "v=0 m/s, θ=45.0°", fig.Plot.Title.Text)
}

func TestPlot_NonFiniteInputPropagatesPlotError(t *testing.T) {
	_, err := Plot(kinematics.Launch{Speed: math.NaN(), Angle: math.Pi / 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, plotter.ErrNaN)
}

func TestFigure_WriteTo(t *testing.T) {
	fig, err := Plot(launch45, WithWidth(3*vg.Inch))
	require.NoError(t, err)

	var png bytes.Buffer
	_, err = fig.WriteTo(&png, "png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	_, err = fig.WriteTo(&svg, "svg")
	require.NoError(t, err)
	assert.Contains(t, svg.String(), "<svg")

	_, err = fig.WriteTo(&svg, "bogus")
	assert.Error(t, err)
}

func TestFigure_Save(t *testing.T) {
	fig, err := Plot(launch45, WithWidth(3*vg.Inch))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trajectory.png")
	require.NoError(t, fig.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestDrawFrame(t *testing.T) {
	a := smallAnimation()

	fig, err := DrawFrame(a, a.Frame(3))
	require.NoError(t, err)
	assert.Equal(t, "v=2000 m/s θ=45.0°", fig.Plot.Title.Text)
	assert.Equal(t, 1000.0, fig.Plot.X.Max)
	assert.Equal(t, 500.0, fig.Plot.Y.Max)
	assert.Equal(t, FrameWidth, fig.Width)

	// Frame 0 has no path yet but still draws.
	_, err = DrawFrame(a, a.Frame(0))
	require.NoError(t, err)
}

func TestDrawFrame_NoMarker(t *testing.T) {
	a := animation.New(kinematics.Launch{Speed: 1, Angle: 1}, animation.DefaultSettings())
	require.Equal(t, 0, a.Trajectory.Len())

	fig, err := DrawFrame(a, a.Frame(0))
	require.NoError(t, err)
	require.NotNil(t, fig.Image(20))
}

func TestGIFDelay(t *testing.T) {
	assert.Equal(t, 4, GIFDelay(time.Second/24))
	assert.Equal(t, 25, GIFDelay(time.Second/4))
	assert.Equal(t, 1, GIFDelay(time.Millisecond))
}

func TestWriteGIF(t *testing.T) {
	a := smallAnimation()

	var buf bytes.Buffer
	require.NoError(t, WriteGIF(&buf, a, WithDPI(24)))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, a.TotalFrames())
	for _, d := range g.Delay {
		assert.Equal(t, 25, d)
	}
}

func TestWriteFrames(t *testing.T) {
	a := smallAnimation()
	dir := filepath.Join(t.TempDir(), "frames")

	paths, err := WriteFrames(dir, a, WithDPI(24))
	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.Equal(t, filepath.Join(dir, "frame_000000.png"), paths[0])
	assert.Equal(t, filepath.Join(dir, "frame_000003.png"), paths[3])
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

type failingCloser struct {
	bytes.Buffer
	err error
}

func (f *failingCloser) Close() error { return f.err }

func TestWriteFrames_CloseError(t *testing.T) {
	closeErr := errors.New("quota exceeded")
	orig := createFile
	t.Cleanup(func() { createFile = orig })
	createFile = func(string) (io.WriteCloser, error) {
		return &failingCloser{err: closeErr}, nil
	}

	paths, err := WriteFrames(t.TempDir(), smallAnimation(), WithDPI(24))
	require.Error(t, err)
	assert.ErrorIs(t, err, closeErr)
	assert.Contains(t, err.Error(), "cannot close png")
	assert.Empty(t, paths)
}

func TestBounds_AxesPoint(t *testing.T) {
	p := DefaultBounds().AxesPoint(labelFracX, labelFracY)
	assert.InDelta(t, 700, p.X, 1e-9)
	assert.InDelta(t, 400, p.Y, 1e-9)
}

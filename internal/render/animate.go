package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/roach88/trajectory/internal/animation"
)

// Label placement in axes fractions.
const (
	labelFracX = 0.7
	labelFracY = 0.8
)

// markerRadius is the drawn radius of the projectile marker.
var markerRadius = vg.Points(4)

// DrawFrame renders one animation frame: the path so far, the projectile
// marker and the elapsed-time label.
func DrawFrame(a *animation.Animation, st animation.FrameState, opts ...Option) (*Figure, error) {
	o := buildOptions(FrameWidth, opts)
	fig := newFigure(AnimationTitle(a.Launch), o)

	if len(st.Path) >= 2 {
		line, err := pathLine(st.Path)
		if err != nil {
			return nil, err
		}
		fig.Plot.Add(line)
	}

	if st.HasMarker {
		marker, err := plotter.NewScatter(plotter.XYs{{X: st.Marker.X, Y: st.Marker.Y}})
		if err != nil {
			return nil, fmt.Errorf("building marker: %w", err)
		}
		marker.GlyphStyle.Shape = draw.CircleGlyph{}
		marker.GlyphStyle.Radius = markerRadius
		marker.GlyphStyle.Color = pathColor
		fig.Plot.Add(marker)
	}

	at := o.Bounds.AxesPoint(labelFracX, labelFracY)
	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: at.X, Y: at.Y}},
		Labels: []string{st.Label},
	})
	if err != nil {
		return nil, fmt.Errorf("building time label: %w", err)
	}
	fig.Plot.Add(label)

	fig.fixAxes(o.Bounds)
	return fig, nil
}

// GIFDelay converts a frame interval to GIF delay units (1/100 s), at
// least one unit.
func GIFDelay(interval time.Duration) int {
	d := int(interval / (10 * time.Millisecond))
	if d < 1 {
		d = 1
	}
	return d
}

// WriteGIF renders every frame of a and encodes them as a looping
// animated GIF.
func WriteGIF(w io.Writer, a *animation.Animation, opts ...Option) error {
	o := buildOptions(FrameWidth, opts)
	delay := GIFDelay(a.Interval())

	out := &gif.GIF{}
	for _, st := range a.Frames() {
		fig, err := DrawFrame(a, st, opts...)
		if err != nil {
			return fmt.Errorf("frame %d: %w", st.Index, err)
		}
		out.Image = append(out.Image, toPaletted(fig.Image(o.DPI)))
		out.Delay = append(out.Delay, delay)
	}
	o.Logger.Debug("encoding gif", "frames", len(out.Image), "delay_cs", delay)

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

// WriteFrames renders every frame of a to dir/frame_000000.png,
// dir/frame_000001.png, ... and returns the written paths.
func WriteFrames(dir string, a *animation.Animation, opts ...Option) ([]string, error) {
	o := buildOptions(FrameWidth, opts)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create frames directory: %w", err)
	}

	var paths []string
	for _, st := range a.Frames() {
		fig, err := DrawFrame(a, st, opts...)
		if err != nil {
			return paths, fmt.Errorf("frame %d: %w", st.Index, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%06d.png", st.Index))
		if err := writePNG(fig, o.DPI, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	o.Logger.Debug("frames written", "dir", dir, "count", len(paths))
	return paths, nil
}

// createFile opens an exported frame for writing.
var createFile = func(path string) (io.WriteCloser, error) { return os.Create(path) }

func writePNG(fig *Figure, dpi int, path string) (err error) {
	c := vgimg.NewWith(
		vgimg.UseWH(fig.Width, fig.Height),
		vgimg.UseDPI(dpi),
	)
	fig.Plot.Draw(draw.New(c))

	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("cannot close png: %w", closeErr)
		}
	}()

	bw := bufio.NewWriter(f)
	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}

func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	pal := make(color.Palette, len(palette.Plan9))
	copy(pal, palette.Plan9)
	dst := image.NewPaletted(b, pal)
	imgdraw.Draw(dst, b, img, b.Min, imgdraw.Src)
	return dst
}

package player

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/roach88/trajectory/internal/animation"
	"github.com/roach88/trajectory/internal/kinematics"
	"github.com/roach88/trajectory/internal/render"
)

// Glyphs used on the character grid.
const (
	pathRune   = '·'
	markerRune = 'o'
	groundRune = '─'
)

var (
	titleStyle  = tcell.StyleDefault.Bold(true)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	pathStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	markerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	groundStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Ticker delivers frame ticks. *time.Ticker is wrapped to satisfy it.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type wallTicker struct{ t *time.Ticker }

func (w wallTicker) C() <-chan time.Time { return w.t.C }
func (w wallTicker) Stop()               { w.t.Stop() }

// NewWallTicker returns a Ticker backed by time.NewTicker.
func NewWallTicker(d time.Duration) Ticker {
	return wallTicker{t: time.NewTicker(d)}
}

// Option configures a Player.
type Option func(*Player)

// WithTicker replaces the wall-clock ticker (for testing).
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(p *Player) { p.newTicker = newTicker }
}

// WithBounds overrides the kilometre bounds of the drawing area.
func WithBounds(b render.Bounds) Option {
	return func(p *Player) { p.bounds = b }
}

// WithHold keeps the last frame on screen until the user quits or the
// context is cancelled.
func WithHold(hold bool) Option {
	return func(p *Player) { p.hold = hold }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// Player draws animation frames onto a tcell screen.
type Player struct {
	screen    tcell.Screen
	anim      *animation.Animation
	bounds    render.Bounds
	newTicker func(time.Duration) Ticker
	hold      bool
	logger    *slog.Logger

	frame int
}

// New creates a player for a on an initialized screen.
func New(screen tcell.Screen, a *animation.Animation, opts ...Option) *Player {
	p := &Player{
		screen:    screen,
		anim:      a,
		bounds:    render.DefaultBounds(),
		newTicker: NewWallTicker,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Frame returns the index of the frame currently on screen.
func (p *Player) Frame() int {
	return p.frame
}

// Run plays the animation. It returns nil when playback finishes or the
// user quits, and ctx.Err() when the context is cancelled.
func (p *Player) Run(ctx context.Context) error {
	total := p.anim.TotalFrames()
	p.logger.Debug("playback starting",
		"frames", total,
		"interval", p.anim.Interval(),
		"samples", p.anim.Trajectory.Len())

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	p.frame = 0
	if total > 0 {
		p.Draw(p.anim.Frame(0))
	}

	finished := total <= 1
	if finished && !p.hold {
		return nil
	}

	// A held single frame never advances, so it needs no ticker.
	var tick <-chan time.Time
	if !finished {
		interval := p.anim.Interval()
		if interval <= 0 {
			return fmt.Errorf("invalid frame interval %v", interval)
		}
		ticker := p.newTicker(interval)
		defer ticker.Stop()
		tick = ticker.C()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					p.logger.Debug("playback stopped by user", "frame", p.frame)
					return nil
				}
			case *tcell.EventResize:
				p.screen.Sync()
				if total > 0 {
					p.Draw(p.anim.Frame(p.frame))
				}
			}

		case <-tick:
			if finished {
				continue
			}
			p.frame++
			p.Draw(p.anim.Frame(p.frame))
			if p.frame >= total-1 {
				finished = true
				p.logger.Debug("playback finished", "frame", p.frame)
				if !p.hold {
					return nil
				}
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Draw renders one frame state: title on the first row, elapsed time on
// the second, the trajectory in the middle and the ground on the last row.
func (p *Player) Draw(st animation.FrameState) {
	s := p.screen
	s.Clear()
	w, h := s.Size()

	drawText(s, (w-len([]rune(render.AnimationTitle(p.anim.Launch))))/2, 0,
		render.AnimationTitle(p.anim.Launch), titleStyle)
	lx := int(float64(w) * 0.7)
	drawText(s, lx, 1, st.Label, labelStyle)

	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, groundRune, nil, groundStyle)
	}

	for _, pt := range st.Path {
		if x, y, ok := p.cell(pt, w, h); ok {
			s.SetContent(x, y, pathRune, nil, pathStyle)
		}
	}
	if st.HasMarker {
		if x, y, ok := p.cell(st.Marker, w, h); ok {
			s.SetContent(x, y, markerRune, nil, markerStyle)
		}
	}
	s.Show()
}

// plotTop is the first row of the drawing area.
const plotTop = 2

// boundsTolerance is the relative slack allowed outside the bounds.
const boundsTolerance = 1e-9

// cell maps a point in kilometres to a screen cell. The drawing area spans
// rows plotTop..h-2 with y=YMin on row h-2. Points outside the bounds are
// not drawn.
func (p *Player) cell(pt kinematics.Point, w, h int) (int, int, bool) {
	b := p.bounds
	xs, ys := b.Span()
	bottom := h - 2
	rows := bottom - plotTop
	if xs <= 0 || ys <= 0 || w < 1 || rows < 0 {
		return 0, 0, false
	}
	// Landing samples can sit a rounding error below the ground.
	ex, ey := xs*boundsTolerance, ys*boundsTolerance
	if pt.X < b.XMin-ex || pt.X > b.XMax+ex || pt.Y < b.YMin-ey || pt.Y > b.YMax+ey {
		return 0, 0, false
	}
	col := int(math.Round((pt.X - b.XMin) / xs * float64(w-1)))
	row := bottom - int(math.Round((pt.Y-b.YMin)/ys*float64(rows)))
	return clamp(col, 0, w-1), clamp(row, plotTop, bottom), true
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/roach88/trajectory/internal/animation"
	"github.com/roach88/trajectory/internal/config"
	"github.com/roach88/trajectory/internal/player"
	"github.com/roach88/trajectory/internal/render"
)

// AnimateOptions holds flags for the animate command.
type AnimateOptions struct {
	*RootOptions
	Launch      LaunchFlags
	Duration    float64
	FrameRate   float64
	Compression float64
	Output      string // animated GIF path
	FramesDir   string // PNG frame sequence directory
	Play        bool   // live terminal playback
	Hold        bool   // keep the last frame on screen until quit

	// NewScreen allows overriding the terminal screen (for testing).
	// If nil, defaults to tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)

	// NewTicker allows overriding the playback clock (for testing).
	// If nil, defaults to player.NewWallTicker.
	NewTicker func(d time.Duration) player.Ticker
}

// AnimateResult is the payload of a successful animate run.
type AnimateResult struct {
	Mode       string   `json:"mode"` // "gif" | "frames" | "play"
	Output     string   `json:"output,omitempty"`
	Title      string   `json:"title"`
	Frames     int      `json:"frames"`
	Samples    int      `json:"samples"`
	IntervalMS float64  `json:"interval_ms"`
	Files      []string `json:"files,omitempty"`
	LastFrame  int      `json:"last_frame"`
}

func (r AnimateResult) String() string {
	switch r.Mode {
	case "play":
		return fmt.Sprintf("✓ played %s to frame %d of %d", r.Title, r.LastFrame, r.Frames)
	case "frames":
		return fmt.Sprintf("✓ %d frames written to %s (%s, %d samples)", len(r.Files), r.Output, r.Title, r.Samples)
	default:
		return fmt.Sprintf("✓ %s written (%s, %d frames, %d samples)", r.Output, r.Title, r.Frames, r.Samples)
	}
}

// NewAnimateCommand creates the animate command.
func NewAnimateCommand(rootOpts *RootOptions) *cobra.Command {
	return newAnimateCommand(&AnimateOptions{RootOptions: rootOpts})
}

func newAnimateCommand(opts *AnimateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Animate the flight",
		Long: `Animate the flight over a fixed wall-clock duration. Simulated time is
compressed so the whole flight fits: each frame advances
compression/frame_rate simulated seconds.

Output targets (mutually exclusive, default --output trajectory.gif):
  --output      animated GIF
  --frames-dir  numbered PNG frames (frame_000000.png, ...)
  --play        live playback in the terminal (q, Esc or Ctrl-C quits)

Examples:
  trajectory animate --speed 2000 --angle 45
  trajectory animate --speed 2000 --angle 45 --frames-dir ./frames
  trajectory animate --speed 2000 --angle 45 --play --duration 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnimate(opts, cmd)
		},
	}

	addLaunchFlags(cmd, &opts.Launch)
	cmd.Flags().Float64Var(&opts.Duration, "duration", 0, "wall-clock length in seconds (default from config, 5)")
	cmd.Flags().Float64Var(&opts.FrameRate, "frame-rate", 0, "frames per second (default from config, 24)")
	cmd.Flags().Float64Var(&opts.Compression, "compression", 0, "simulated seconds per wall-clock second (default from config, 300)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "trajectory.gif", "animated GIF output file")
	cmd.Flags().StringVar(&opts.FramesDir, "frames-dir", "", "write PNG frames to this directory")
	cmd.Flags().BoolVar(&opts.Play, "play", false, "play in the terminal")
	cmd.Flags().BoolVar(&opts.Hold, "hold", true, "with --play, keep the last frame until quit")
	cmd.MarkFlagsMutuallyExclusive("output", "frames-dir", "play")

	return cmd
}

func runAnimate(opts *AnimateOptions, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)
	log := opts.logger().With("run_id", out.RunID)

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return out.Fail(ExitCommandError, configErrorCode(err), "failed to load config", err)
	}
	opts.Launch.applyGravity(cmd, &cfg)
	if cmd.Flags().Changed("duration") {
		cfg.Animation.Duration = opts.Duration
	}
	if cmd.Flags().Changed("frame-rate") {
		cfg.Animation.FrameRate = opts.FrameRate
	}
	if cmd.Flags().Changed("compression") {
		cfg.Animation.Compression = opts.Compression
	}
	if err := config.ValidateOverrides(cfg); err != nil {
		return out.Fail(ExitCommandError, configErrorCode(err), "invalid flags", err)
	}

	l, err := opts.Launch.resolve(cmd, opts.RootOptions, cfg)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeUsage, err.Error(), nil)
	}

	a := animation.New(l, cfg.AnimationSettings())
	result := AnimateResult{
		Title:      render.AnimationTitle(l),
		Frames:     a.TotalFrames(),
		Samples:    a.Trajectory.Len(),
		IntervalMS: float64(a.Interval().Microseconds()) / 1000,
	}
	log.Debug("animation prepared",
		"frames", result.Frames,
		"samples", result.Samples,
		"interval", a.Interval())
	out.VerboseLog("rendering %d frames (%d samples)", result.Frames, result.Samples)

	switch {
	case opts.Play:
		result.Mode = "play"
		last, err := playAnimation(opts, cmd, a, cfg)
		if err != nil {
			return out.Fail(ExitCommandError, ErrCodePlayback, "playback failed", err)
		}
		result.LastFrame = last

	case opts.FramesDir != "":
		result.Mode = "frames"
		result.Output = opts.FramesDir
		files, err := render.WriteFrames(opts.FramesDir, a, renderOptions(cfg, opts.RootOptions)...)
		if err != nil {
			return out.Fail(ExitCommandError, ErrCodeRender, "failed to write frames", err)
		}
		result.Files = files
		result.LastFrame = len(files) - 1
		log.Info("frames written", "dir", opts.FramesDir, "count", len(files))

	default:
		result.Mode = "gif"
		result.Output = opts.Output
		if err := writeGIFFile(opts.Output, a, renderOptions(cfg, opts.RootOptions)); err != nil {
			return out.Fail(ExitCommandError, ErrCodeRender, "failed to write gif", err)
		}
		result.LastFrame = result.Frames - 1
		log.Info("gif written", "path", opts.Output)
	}

	return out.Success(result)
}

func writeGIFFile(path string, a *animation.Animation, ropts []render.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return render.WriteGIF(f, a, ropts...)
}

// playAnimation runs the terminal player until it finishes, the user quits
// or the process is interrupted. It returns the last frame shown.
func playAnimation(opts *AnimateOptions, cmd *cobra.Command, a *animation.Animation, cfg config.Config) (int, error) {
	newScreen := opts.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return 0, fmt.Errorf("cannot open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("cannot initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	popts := []player.Option{
		player.WithBounds(cfg.Bounds()),
		player.WithHold(opts.Hold),
		player.WithLogger(opts.logger()),
	}
	if opts.NewTicker != nil {
		popts = append(popts, player.WithTicker(opts.NewTicker))
	}
	p := player.New(screen, a, popts...)

	if err := p.Run(ctx); err != nil && err != context.Canceled {
		return p.Frame(), err
	}
	return p.Frame(), nil
}

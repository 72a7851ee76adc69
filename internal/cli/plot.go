package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/roach88/trajectory/internal/config"
	"github.com/roach88/trajectory/internal/render"
)

// PlotOptions holds flags for the plot command.
type PlotOptions struct {
	*RootOptions
	Launch  LaunchFlags
	Samples int
	Output  string
}

// PlotResult is the payload of a successful plot.
type PlotResult struct {
	Output   string  `json:"output"`
	Title    string  `json:"title"`
	Duration float64 `json:"flight_duration"`
	Samples  int     `json:"samples"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

func (r PlotResult) String() string {
	return fmt.Sprintf("✓ %s written (%s, %d samples, %.2f s flight)", r.Output, r.Title, r.Samples, r.Duration)
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a static trajectory plot",
		Long: `Render the full flight path as a dotted line on fixed axes
(x 0-1000 km, y 0-500 km by default) with equal aspect.

The output format follows the file extension: .png, .svg, .pdf, .eps,
.jpg or .tif.

Examples:
  trajectory plot --speed 2000 --angle 45
  trajectory plot --speed 2000 --angle 45 -o shell.svg
  trajectory plot --speed 2000 --angle 0.785 --degrees=false`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(opts, cmd)
		},
	}

	addLaunchFlags(cmd, &opts.Launch)
	cmd.Flags().IntVar(&opts.Samples, "samples", 0, "number of samples along the path (default from config, 100)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "trajectory.png", "output file")

	return cmd
}

func runPlot(opts *PlotOptions, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)
	log := opts.logger().With("run_id", out.RunID)

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return out.Fail(ExitCommandError, configErrorCode(err), "failed to load config", err)
	}
	opts.Launch.applyGravity(cmd, &cfg)
	if cmd.Flags().Changed("samples") {
		cfg.Samples = opts.Samples
	}
	if err := config.ValidateOverrides(cfg); err != nil {
		return out.Fail(ExitCommandError, configErrorCode(err), "invalid flags", err)
	}

	l, err := opts.Launch.resolve(cmd, opts.RootOptions, cfg)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeUsage, err.Error(), nil)
	}

	log.Debug("plotting", "speed", l.Speed, "angle_deg", l.Degrees(), "samples", cfg.Samples)
	fig, err := render.Plot(l, renderOptions(cfg, opts.RootOptions)...)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeRender, "failed to build plot", err)
	}
	if err := fig.Save(opts.Output); err != nil {
		return out.Fail(ExitCommandError, ErrCodeRender, "failed to save plot", err)
	}
	log.Info("plot written", "path", opts.Output)

	return out.Success(PlotResult{
		Output:   opts.Output,
		Title:    fig.Plot.Title.Text,
		Duration: flightDuration(l, cfg),
		Samples:  cfg.Samples,
		WidthIn:  float64(fig.Width / vg.Inch),
		HeightIn: float64(fig.Height / vg.Inch),
	})
}

// configErrorCode returns the config error code carried by err, if any.
func configErrorCode(err error) string {
	var ce *config.Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrCodeUsage
}

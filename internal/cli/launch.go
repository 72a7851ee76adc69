package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/roach88/trajectory/internal/config"
	"github.com/roach88/trajectory/internal/kinematics"
	"github.com/roach88/trajectory/internal/render"
)

// LaunchFlags holds the launch parameters shared by plot, animate and sample.
type LaunchFlags struct {
	Speed   float64 // m/s
	Angle   float64 // degrees, or radians with --degrees=false
	Gravity float64 // m/s², 0 keeps the configured value
}

func addLaunchFlags(cmd *cobra.Command, lf *LaunchFlags) {
	cmd.Flags().Float64Var(&lf.Speed, "speed", 0, "initial speed in m/s")
	cmd.Flags().Float64Var(&lf.Angle, "angle", 0, "launch angle above horizontal")
	cmd.Flags().Float64Var(&lf.Gravity, "gravity", 0, "gravitational acceleration in m/s² (default from config, 9.81)")
}

// loadConfig reads --config when given, or returns the defaults.
func loadConfig(opts *RootOptions) (config.Config, error) {
	if opts.ConfigPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	opts.logger().Debug("config loaded", "path", opts.ConfigPath)
	return cfg, nil
}

// applyGravity copies --gravity onto cfg when it was given.
func (lf *LaunchFlags) applyGravity(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = lf.Gravity
	}
}

// resolve merges the flags over the configured launch. Speed and angle are
// required unless the config file provides a launch block.
func (lf *LaunchFlags) resolve(cmd *cobra.Command, opts *RootOptions, cfg config.Config) (kinematics.Launch, error) {
	l, ok := cfg.LaunchValue()
	speedSet := cmd.Flags().Changed("speed")
	angleSet := cmd.Flags().Changed("angle")
	if !ok && (!speedSet || !angleSet) {
		return kinematics.Launch{}, fmt.Errorf("--speed and --angle are required unless the config file sets launch")
	}

	if speedSet {
		l.Speed = lf.Speed
	}
	if angleSet {
		if opts.Degrees {
			l = kinematics.FromDegrees(l.Speed, lf.Angle)
		} else {
			l.Angle = lf.Angle
		}
	}
	return l, nil
}

// renderOptions converts the plot config into renderer options.
func renderOptions(cfg config.Config, opts *RootOptions) []render.Option {
	ropts := []render.Option{
		render.WithGravity(cfg.GravityValue()),
		render.WithSamples(cfg.Samples),
		render.WithBounds(cfg.Bounds()),
		render.WithDPI(cfg.Plot.DPI),
		render.WithLogger(opts.logger()),
	}
	if cfg.Plot.Width > 0 {
		ropts = append(ropts, render.WithWidth(vg.Length(cfg.Plot.Width)*vg.Inch))
	}
	return ropts
}

func flightDuration(l kinematics.Launch, cfg config.Config) float64 {
	return kinematics.FlightDuration(l, cfg.GravityValue())
}

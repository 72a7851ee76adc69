package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/trajectory/internal/config"
	"github.com/roach88/trajectory/internal/kinematics"
	"github.com/roach88/trajectory/internal/render"
	"github.com/roach88/trajectory/internal/snapshot"
)

// SampleOptions holds flags for the sample command.
type SampleOptions struct {
	*RootOptions
	Launch  LaunchFlags
	Samples int
}

// SampleRow is one time sample with its position in kilometres.
type SampleRow struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SampleResult is the payload of the sample command.
type SampleResult struct {
	Title          string           `json:"title"`
	FlightDuration float64          `json:"flight_duration"` // seconds
	Apex           kinematics.Point `json:"apex"`            // metres
	Range          float64          `json:"range"`           // metres
	Fingerprint    string           `json:"fingerprint"`
	Samples        []SampleRow      `json:"samples"`
}

func (r SampleResult) String() string {
	var buf strings.Builder
	fmt.Fprintln(&buf, r.Title)
	fmt.Fprintf(&buf, "flight duration: %.3f s\n", r.FlightDuration)
	fmt.Fprintf(&buf, "apex: x=%.3f km y=%.3f km\n", r.Apex.X/kinematics.MetersPerKilometer, r.Apex.Y/kinematics.MetersPerKilometer)
	fmt.Fprintf(&buf, "range: %.3f km\n", r.Range/kinematics.MetersPerKilometer)
	fmt.Fprintf(&buf, "fingerprint: %s\n\n", r.Fingerprint)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "t [s]\tx [km]\ty [km]\t")
	for _, row := range r.Samples {
		fmt.Fprintf(tw, "%.3f\t%.3f\t%.3f\t\n", row.T, row.X, row.Y)
	}
	tw.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SampleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the sampled trajectory",
		Long: `Print the flight duration, apex, range and the sampled positions
(kilometres) exactly as the static plot draws them.

Examples:
  trajectory sample --speed 2000 --angle 45
  trajectory sample --speed 2000 --angle 45 --samples 10 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(opts, cmd)
		},
	}

	addLaunchFlags(cmd, &opts.Launch)
	cmd.Flags().IntVar(&opts.Samples, "samples", 0, "number of samples (default from config, 100)")

	return cmd
}

func runSample(opts *SampleOptions, cmd *cobra.Command) error {
	out := newFormatter(cmd, opts.RootOptions)

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

	g := cfg.GravityValue()
	traj := kinematics.Build(l, g, cfg.Samples, kinematics.MetersPerKilometer)
	fp, err := snapshot.Fingerprint(traj)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeRender, "trajectory is not finite", err)
	}
	opts.logger().Debug("sampled", "run_id", out.RunID, "samples", traj.Len(), "fingerprint", fp)

	rows := make([]SampleRow, traj.Len())
	for i, p := range traj.Points {
		rows[i] = SampleRow{T: traj.Times[i], X: p.X, Y: p.Y}
	}
	return out.Success(SampleResult{
		Title:          render.StaticTitle(l),
		FlightDuration: traj.Duration,
		Apex:           kinematics.Apex(l, g),
		Range:          kinematics.Range(l, g),
		Fingerprint:    fp,
		Samples:        rows,
	})
}

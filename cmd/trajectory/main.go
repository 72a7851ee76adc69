// Command trajectory plots and animates ballistic projectile trajectories.
package main

import (
	"os"

	"github.com/roach88/trajectory/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}

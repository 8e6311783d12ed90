// Command cadence runs transition presets through the batched scheduler,
// either in virtual time with a step trace (simulate) or in real time with
// progress bars (play).
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cadence: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cadence"
	app.HelpName = "cadence"
	app.Usage = "drive eased transitions with a single shared timer"
	app.UsageText = "cadence <command> [arguments...] PRESETS.yaml"
	app.Version = version
	app.Commands = []cli.Command{
		{
			Name:      "simulate",
			Aliases:   []string{"sim", "s"},
			Usage:     "run presets in virtual time and report step counts",
			ArgsUsage: "PRESETS.yaml",
			Action:    simulateAction,
			Flags:     simFlags,
		},
		{
			Name:      "play",
			Aliases:   []string{"p"},
			Usage:     "run presets in real time with progress bars",
			ArgsUsage: "PRESETS.yaml",
			Action:    playAction,
		},
	}
	return app
}

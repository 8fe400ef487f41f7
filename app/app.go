package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/exerun/exerun/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the exerun app instance.
func Get() *cli.App {
	exerunApp := &cli.App{
		Name: "exerun",
		Usage: `
		Exerun is a workout tracker for the command-line. Its quick workout is an
		interval timer that alternates work and rest phases for a number of
		sets, with a short countdown before the first set.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "interval",
				Aliases: []string{"quick"},
				Usage:   "Start a quick interval workout",
				Flags:   intervalFlags,
				Action:  intervalAction,
			},
			{
				Name:   "run",
				Usage:  "Start a free run stopwatch with live statistics",
				Flags:  []cli.Flag{trackFlag, sessionCmdFlag},
				Action: runAction,
			},
			{
				Name:   "workouts",
				Usage:  "List the available workouts",
				Action: workoutsAction,
			},
			{
				Name:   "history",
				Usage:  "List finished workouts",
				Flags:  append([]cli.Flag{jsonFlag}, filterFlags...),
				Action: historyAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with totals and breakdowns. Defaults to a
				reporting period of 7 days`,
				Flags:  filterFlags,
				Action: statsAction,
			},
			{
				Name:   "delete",
				Usage:  "Delete workouts from the history",
				Flags:  filterFlags,
				Action: deleteAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running workout",
				Action: statusAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the cue sounds that can be configured",
				Action: soundsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append([]cli.Flag{noColorFlag}, intervalFlags...),
		Action: intervalAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return exerunApp
}

package app

import "github.com/urfave/cli/v2"

var (
	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration of each set, e.g. 45s or 1m30s (default: 40s)",
	}

	restFlag = &cli.StringFlag{
		Name:    "rest",
		Aliases: []string{"r"},
		Usage:   "Rest duration between sets, e.g. 20s (default: 20s)",
	}

	setsFlag = &cli.IntFlag{
		Name:    "sets",
		Aliases: []string{"s"},
		Usage:   "Number of work sets (default: 8)",
	}

	finalRestFlag = &cli.BoolFlag{
		Name:  "final-rest",
		Usage: "Rest once more after the last set",
	}

	setupFlag = &cli.BoolFlag{
		Name:  "setup",
		Usage: "Choose the workout in an interactive form",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Print the workout as plain lines instead of the full screen timer",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not play any cue sounds",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification at the start of each phase",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after the workout",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	trackFlag = &cli.StringFlag{
		Name:    "track",
		Aliases: []string{"t"},
		Usage:   "Replay a recorded GPX track into the run",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include workouts after this date (e.g. '7 days ago', '2024-01-01')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include workouts before this date (e.g. 'yesterday')",
	}

	kindFlag = &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "Only include workouts of the comma-separated kinds (e.g. quick,running)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)

// intervalFlags are accepted by the root command and the interval command.
var intervalFlags = []cli.Flag{
	workFlag,
	restFlag,
	setsFlag,
	finalRestFlag,
	setupFlag,
	headlessFlag,
	noSoundFlag,
	disableNotificationFlag,
	sessionCmdFlag,
}

var filterFlags = []cli.Flag{
	sinceFlag,
	untilFlag,
	kindFlag,
}

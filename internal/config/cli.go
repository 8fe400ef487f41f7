package config

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/exerun/exerun/internal/timeutil"
	"github.com/exerun/exerun/internal/workout"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Work          string
	Rest          string
	Since         string
	Until         string
	Kind          string
	Track         string
	SessionCmd    string
	Sets          int
	FinalRest     bool
	Mute          bool
	DisableNotify bool
	Headless      bool
	Setup         bool
	JSON          bool
}

// WithCLIConfig returns an Option that applies the flags set on the
// command line. Flags left unset keep the config file values.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:          ctx.String("work"),
			Rest:          ctx.String("rest"),
			Since:         ctx.String("since"),
			Until:         ctx.String("until"),
			Kind:          ctx.String("kind"),
			Track:         ctx.String("track"),
			SessionCmd:    ctx.String("session-cmd"),
			Sets:          ctx.Int("sets"),
			FinalRest:     ctx.Bool("final-rest"),
			Mute:          ctx.Bool("no-sound"),
			DisableNotify: ctx.Bool("disable-notification"),
			Headless:      ctx.Bool("headless"),
			Setup:         ctx.Bool("setup"),
			JSON:          ctx.Bool("json"),
		}

		return applyCLIOptions(c, opts)
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Work != "" {
		d, err := parseDuration(opts.Work)
		if err != nil {
			return errInvalidCLIDuration.Fmt("work", err)
		}

		c.Interval.Work = d
	}

	if opts.Rest != "" {
		d, err := parseDuration(opts.Rest)
		if err != nil {
			return errInvalidCLIDuration.Fmt("rest", err)
		}

		c.Interval.Rest = d
	}

	if opts.Sets > 0 {
		c.Interval.Sets = opts.Sets
	}

	if opts.FinalRest {
		c.Interval.FinalRest = true
	}

	if opts.Mute {
		c.Sounds.Mute = true
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Since != "" {
		t, err := timeutil.FromStr(opts.Since)
		if err != nil {
			return errInvalidSince.Fmt(opts.Since).Wrap(err)
		}

		c.CLI.Since = t
	}

	if opts.Until != "" {
		t, err := timeutil.FromStr(opts.Until)
		if err != nil {
			return errInvalidSince.Fmt(opts.Until).Wrap(err)
		}

		c.CLI.Until = t
	}

	if opts.Kind != "" {
		c.CLI.Kinds = nil

		for _, k := range strings.Split(opts.Kind, ",") {
			w, err := workout.Lookup(k)
			if err != nil {
				return err
			}

			c.CLI.Kinds = append(c.CLI.Kinds, w.Kind)
		}
	}

	c.CLI.Track = opts.Track
	c.CLI.Headless = opts.Headless
	c.CLI.Setup = opts.Setup
	c.CLI.JSON = opts.JSON

	return nil
}

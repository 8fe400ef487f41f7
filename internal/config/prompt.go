package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/exerun/exerun/internal/interval"
)

const asciiLogo = `
███████╗██╗  ██╗███████╗██████╗ ██╗   ██╗███╗   ██╗
██╔════╝╚██╗██╔╝██╔════╝██╔══██╗██║   ██║████╗  ██║
█████╗   ╚███╔╝ █████╗  ██████╔╝██║   ██║██╔██╗ ██║
██╔══╝   ██╔██╗ ██╔══╝  ██╔══██╗██║   ██║██║╚██╗██║
███████╗██╔╝ ██╗███████╗██║  ██║╚██████╔╝██║ ╚████║
╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝`

// PromptOptions holds the values picked in the setup form.
type PromptOptions struct {
	WorkMinutes int
	WorkSeconds int
	RestMinutes int
	RestSeconds int
	Sets        int
	FinalRest   bool
}

// WithPromptConfig returns an Option that asks for the workout in an
// interactive form when enabled. The form starts from the current values.
func WithPromptConfig(enabled bool) Option {
	return func(c *Config) error {
		if !enabled {
			return nil
		}

		opts := promptDefaults(c)

		for {
			if err := promptUser(&opts); err != nil {
				return fmt.Errorf("user prompt failed: %w", err)
			}

			err := applyPromptOptions(c, opts)
			if !errors.Is(err, interval.ErrInvalidConfig) {
				return err
			}

			pterm.Warning.Println(err)
		}
	}
}

func promptDefaults(c *Config) PromptOptions {
	w := c.IntervalWorkout()

	sets := w.Sets
	if sets < 1 {
		sets = 1
	}

	return PromptOptions{
		WorkMinutes: min(w.Work/60, 59),
		WorkSeconds: w.Work % 60,
		RestMinutes: min(w.Rest/60, 59),
		RestSeconds: w.Rest % 60,
		Sets:        min(sets, maxSets),
		FinalRest:   w.FinalRest,
	}
}

// rangeOptions returns select options for every value in [lo, hi].
func rangeOptions(lo, hi int, unit string) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, hi-lo+1)

	for i := lo; i <= hi; i++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(i)+unit, i))
	}

	return opts
}

func promptUser(opts *PromptOptions) error {
	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Pick the work and rest lengths and the number of sets.
Workouts must last at least a minute in total.
Edit the config file with 'exerun edit-config' to change the defaults.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Work minutes").
				Options(rangeOptions(0, 59, " min")...).
				Value(&opts.WorkMinutes),
			huh.NewSelect[int]().
				Title("Work seconds").
				Options(rangeOptions(0, 59, " sec")...).
				Value(&opts.WorkSeconds),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Rest minutes").
				Options(rangeOptions(0, 59, " min")...).
				Value(&opts.RestMinutes),
			huh.NewSelect[int]().
				Title("Rest seconds").
				Options(rangeOptions(0, 59, " sec")...).
				Value(&opts.RestSeconds),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Sets").
				Options(rangeOptions(1, maxSets, "")...).
				Value(&opts.Sets),
			huh.NewConfirm().
				Title("Rest after the last set?").
				Value(&opts.FinalRest),
		),
	).WithShowHelp(true)

	if err := form.Run(); err != nil {
		return fmt.Errorf("form interaction failed: %w", err)
	}

	return nil
}

// applyPromptOptions validates the picked workout before applying it.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	w, err := interval.FromParts(
		opts.WorkMinutes,
		opts.WorkSeconds,
		opts.RestMinutes,
		opts.RestSeconds,
		opts.Sets,
	)
	if err != nil {
		return err
	}

	c.Interval.Work = time.Duration(w.Work) * time.Second
	c.Interval.Rest = time.Duration(w.Rest) * time.Second
	c.Interval.Sets = w.Sets
	c.Interval.FinalRest = opts.FinalRest

	return nil
}

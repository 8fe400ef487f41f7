// Package interval implements the interval workout timer: a lead-in countdown
// followed by alternating work and rest periods until every set is done
package interval

import (
	"math"
	"time"
)

const (
	// LeadIn is the number of ticks counted down before the first work period.
	LeadIn = 3

	// MinWorkout is the shortest accepted workout in seconds, computed as
	// (work + rest) * sets.
	MinWorkout = 60
)

// Config is the immutable configuration captured when a workout is set up.
// Durations are whole seconds, which is also the tick size.
type Config struct {
	Work      int  `json:"work"`
	Rest      int  `json:"rest"`
	Sets      int  `json:"sets"`
	FinalRest bool `json:"final_rest"`
}

// FromParts builds a Config from the minutes and seconds pickers of the
// setup form.
func FromParts(workMins, workSecs, restMins, restSecs, sets int) (Config, error) {
	if workMins < 0 || workSecs < 0 || restMins < 0 || restSecs < 0 {
		return Config{}, ErrInvalidConfig.Fmt("durations cannot be negative")
	}

	cfg := Config{
		Work: workMins*60 + workSecs,
		Rest: restMins*60 + restSecs,
		Sets: sets,
	}

	return cfg, cfg.Validate()
}

// FromDurations builds a Config from time.Duration values, rounding each to
// the nearest second.
func FromDurations(work, rest time.Duration, sets int) Config {
	return Config{
		Work: int(math.Round(work.Seconds())),
		Rest: int(math.Round(rest.Seconds())),
		Sets: sets,
	}
}

// Validate reports whether the workout can be started. Workouts shorter
// than a minute are rejected.
func (c Config) Validate() error {
	if c.Work < 0 || c.Rest < 0 {
		return ErrInvalidConfig.Fmt("durations cannot be negative")
	}

	if c.Sets <= 0 {
		return ErrInvalidConfig.Fmt("at least one set is required")
	}

	if c.Total() < MinWorkout {
		return ErrInvalidConfig.Fmt("workout should be at least a minute")
	}

	return nil
}

// Total returns (work + rest) * sets in seconds.
func (c Config) Total() int {
	return (c.Work + c.Rest) * c.Sets
}

// Ticks returns the number of ticks from start to completion, including
// the lead-in.
func (c Config) Ticks() int {
	ticks := LeadIn + c.Work*c.Sets + c.Rest*(c.Sets-1)
	if c.FinalRest {
		ticks += c.Rest
	}

	return ticks
}

func (c Config) duration(p Phase) int {
	switch p {
	case Countdown:
		return LeadIn
	case Work:
		return c.Work
	case Rest:
		return c.Rest
	default:
		return 0
	}
}

package config

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const (
	// maxPhase matches the largest value of the minutes and seconds
	// pickers.
	maxPhase = 59*time.Minute + 59*time.Second
	maxSets  = 99
)

var (
	validExts   = []string{".mp3", ".ogg", ".flac", ".wav"}
	validLevels = []string{"debug", "info", "warn", "warning", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateInterval(); err != nil {
		return err
	}

	if err := c.validateSounds(); err != nil {
		return err
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level != "" && !slices.Contains(validLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateInterval() error {
	phases := []struct {
		name string
		d    time.Duration
	}{
		{"work", c.Interval.Work},
		{"rest", c.Interval.Rest},
	}

	for _, p := range phases {
		if p.d < 0 || p.d > maxPhase {
			return errInvalidPhase.Fmt(p.name, maxPhase, p.d)
		}
	}

	if c.Interval.Sets < 1 || c.Interval.Sets > maxSets {
		return errInvalidSets.Fmt(maxSets, c.Interval.Sets)
	}

	return c.IntervalWorkout().Validate()
}

// validateSounds only checks file extensions. Missing sounds are reported
// when a cue is played.
func (c *Config) validateSounds() error {
	sounds := []string{
		c.Sounds.Countdown,
		c.Sounds.Go,
		c.Sounds.Work,
		c.Sounds.Rest,
		c.Sounds.Finish,
	}

	for _, s := range sounds {
		ext := strings.ToLower(filepath.Ext(s))
		if ext != "" && !slices.Contains(validExts, ext) {
			return errInvalidSoundFormat.Fmt(s)
		}
	}

	return nil
}

// Package config loads settings from the config file, command-line flags and
// the interactive setup form, in that order of precedence from lowest to
// highest
package config

import (
	"fmt"
	"time"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/timeutil"
	"github.com/exerun/exerun/internal/workout"
)

type (
	// Config holds all configuration settings
	Config struct {
		Interval      IntervalConfig     `mapstructure:"interval"`
		Sounds        SoundConfig        `mapstructure:"sounds"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// IntervalConfig holds the default quick workout
	IntervalConfig struct {
		Work      time.Duration `mapstructure:"work"`
		Rest      time.Duration `mapstructure:"rest"`
		Sets      int           `mapstructure:"sets"`
		FinalRest bool          `mapstructure:"final_rest"`
	}

	// SoundConfig holds the sound played for each cue
	SoundConfig struct {
		Countdown string `mapstructure:"countdown"`
		Go        string `mapstructure:"go"`
		Work      string `mapstructure:"work"`
		Rest      string `mapstructure:"rest"`
		Finish    string `mapstructure:"finish"`
		Mute      bool   `mapstructure:"mute"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only make sense for a single invocation
	CLIConfig struct {
		Since    time.Time
		Until    time.Time
		Kinds    []workout.Kind
		Track    string
		Headless bool
		Setup    bool
		JSON     bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}

// IntervalWorkout converts the interval settings for the engine.
func (c *Config) IntervalWorkout() interval.Config {
	cfg := interval.FromDurations(c.Interval.Work, c.Interval.Rest, c.Interval.Sets)
	cfg.FinalRest = c.Interval.FinalRest

	return cfg
}

// Describe summarises the interval settings, e.g. "8 x 00:40 work / 00:20 rest".
func (c *Config) Describe() string {
	w := c.IntervalWorkout()

	return fmt.Sprintf(
		"%d x %s work / %s rest",
		w.Sets,
		timeutil.Clock(w.Work),
		timeutil.Clock(w.Rest),
	)
}

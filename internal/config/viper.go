package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/exerun/exerun/internal/osutil"
)

const (
	keyWork                 = "interval.work"
	keyRest                 = "interval.rest"
	keySets                 = "interval.sets"
	keyFinalRest            = "interval.final_rest"
	keyCountdownSound       = "sounds.countdown"
	keyGoSound              = "sounds.go"
	keyWorkSound            = "sounds.work"
	keyRestSound            = "sounds.rest"
	keyFinishSound          = "sounds.finish"
	keyMute                 = "sounds.mute"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keySessionCmd           = "settings.cmd"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the file
// at configPath. A missing file is created with the defaults.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyWork, "40s")
	v.SetDefault(keyRest, "20s")
	v.SetDefault(keySets, 8)
	v.SetDefault(keyFinalRest, false)
	v.SetDefault(keyCountdownSound, "tick")
	v.SetDefault(keyGoSound, "go")
	v.SetDefault(keyWorkSound, "whistle")
	v.SetDefault(keyRestSound, "bell")
	v.SetDefault(keyFinishSound, "gong")
	v.SetDefault(keyMute, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")
}

// loadViperConfig decodes Viper's settings into c. Durations without a unit
// are taken as seconds.
func loadViperConfig(v *viper.Viper, c *Config) error {
	for _, key := range []string{keyWork, keyRest} {
		d, err := parseDuration(v.GetString(key))
		if err != nil {
			return errDecodeConfig.Wrap(fmt.Errorf("%s: %w", key, err))
		}

		v.Set(key, d)
	}

	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}

// parseDuration accepts Go duration strings, or a bare number of seconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	secs, err := time.ParseDuration(s + "s")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return secs, nil
}

// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(secs float64) (mins, s int) {
	total := Round(secs)
	if total < 0 {
		total = 0
	}

	return total / secondsInAMinute, total % secondsInAMinute
}

// Clock formats a number of seconds as MM:SS. Minutes are not wrapped into
// hours.
func Clock(secs int) string {
	m, s := SecsToMinsAndSecs(float64(secs))

	return fmt.Sprintf("%02d:%02d", m, s)
}

// LongClock formats a duration as HH:MM:SS.
func LongClock(d time.Duration) string {
	total := Round(d.Seconds())
	if total < 0 {
		total = 0
	}

	h := total / secondsInAnHour
	m := (total % secondsInAnHour) / secondsInAMinute
	s := total % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// FromStr parses a human readable date such as "7 days ago" or
// "2024-03-01 18:00".
func FromStr(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	dt, err := dateparser.Parse(nil, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}

	return dt.Time, nil
}

// keyLayout is fixed width so that keys sort in time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}

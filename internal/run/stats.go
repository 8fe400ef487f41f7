package run

import (
	"fmt"
	"math"
	"time"

	"github.com/exerun/exerun/internal/timeutil"
)

// Stats is a snapshot of a run. Distance and Elevation are metres, paces
// are seconds per kilometre and speeds kilometres per hour.
type Stats struct {
	Elapsed   time.Duration
	Distance  float64
	Pace      float64
	AvgPace   float64
	Speed     float64
	AvgSpeed  float64
	Elevation float64
	HeartRate int
}

// Field is a labelled, formatted statistic.
type Field struct {
	Name  string
	Value string
}

// Fields returns the statistics in display order.
func (s Stats) Fields() []Field {
	return []Field{
		{"Time", timeutil.LongClock(s.Elapsed)},
		{"Distance", FormatDistance(s.Distance)},
		{"Pace", FormatPace(s.Pace)},
		{"Elevation", FormatElevation(s.Elevation)},
		{"Avg Pace", FormatPace(s.AvgPace)},
		{"Speed", FormatSpeed(s.Speed)},
		{"Heart Rate", FormatHeartRate(s.HeartRate)},
		{"Avg Speed", FormatSpeed(s.AvgSpeed)},
	}
}

// FormatPace formats seconds per kilometre as M'SS''/km.
func FormatPace(secsPerKm float64) string {
	if secsPerKm <= 0 || math.IsInf(secsPerKm, 0) || math.IsNaN(secsPerKm) {
		return "0'00''/km"
	}

	total := int(math.Round(secsPerKm))

	return fmt.Sprintf("%d'%02d''/km", total/60, total%60)
}

func FormatSpeed(kmh float64) string {
	return fmt.Sprintf("%.1f km/h", kmh)
}

func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

func FormatElevation(meters float64) string {
	return fmt.Sprintf("%.0f m", meters)
}

func FormatHeartRate(bpm int) string {
	return fmt.Sprintf("%d bpm", bpm)
}

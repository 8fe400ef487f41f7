// Package run tracks a free run: a stopwatch that can be paused and
// continued, fed with location samples from which live statistics are
// derived
package run

import (
	"math"
	"time"

	"github.com/exerun/exerun/internal/apperr"
)

var (
	errNotStarted = &apperr.Error{
		Message: "the run has not been started",
	}

	errAlreadyStarted = &apperr.Error{
		Message: "the run has already been started",
	}

	errNotRunning = &apperr.Error{
		Message: "the run is paused",
	}

	errNotPaused = &apperr.Error{
		Message: "the run is not paused",
	}

	errFinished = &apperr.Error{
		Message: "the run is finished",
	}
)

// paceWindow is how far back the current pace and speed look.
const paceWindow = 30 * time.Second

// Sample is a single location fix.
type Sample struct {
	Time      time.Time `json:"time"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Elevation float64   `json:"elevation"`
	HeartRate int       `json:"heart_rate,omitempty"`
}

type mark struct {
	at       time.Time
	distance float64
}

// Summary is the outcome of a finished run.
type Summary struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Active    time.Duration `json:"active"`
	Distance  float64       `json:"distance"`
	Climb     float64       `json:"climb"`
	AvgPace   float64       `json:"avg_pace"`
	AvgSpeed  float64       `json:"avg_speed"`
	MaxHR     int           `json:"max_hr,omitempty"`
}

// Session is a free run. It is not safe for concurrent use.
type Session struct {
	startTime time.Time
	resumedAt time.Time
	active    time.Duration
	started   bool
	running   bool
	finished  bool

	distance  float64
	climb     float64
	elevation float64
	heartRate int
	maxHR     int
	last      *Sample
	window    []mark
}

// Start begins the stopwatch at now.
func (s *Session) Start(now time.Time) error {
	if s.started {
		return errAlreadyStarted
	}

	s.started = true
	s.running = true
	s.startTime = now
	s.resumedAt = now

	return nil
}

// Running reports whether the stopwatch is counting.
func (s *Session) Running() bool {
	return s.running
}

// Pause stops the stopwatch. Samples added while paused only update the
// elevation and heart rate readings.
func (s *Session) Pause(now time.Time) error {
	if err := s.check(); err != nil {
		return err
	}

	if !s.running {
		return errNotRunning
	}

	s.active += now.Sub(s.resumedAt)
	s.running = false
	s.last = nil
	s.window = s.window[:0]

	return nil
}

// Resume continues a paused run.
func (s *Session) Resume(now time.Time) error {
	if err := s.check(); err != nil {
		return err
	}

	if s.running {
		return errNotPaused
	}

	s.running = true
	s.resumedAt = now

	return nil
}

// Add records a location sample.
func (s *Session) Add(sm Sample) {
	if !s.started || s.finished {
		return
	}

	if sm.HeartRate > 0 {
		s.heartRate = sm.HeartRate
		s.maxHR = max(s.maxHR, sm.HeartRate)
	}

	if !s.running {
		s.elevation = sm.Elevation
		return
	}

	if s.last != nil {
		s.distance += Distance(s.last.Lat, s.last.Lon, sm.Lat, sm.Lon)

		if gain := sm.Elevation - s.last.Elevation; gain > 0 {
			s.climb += gain
		}
	}

	s.elevation = sm.Elevation
	s.last = &sm

	s.window = append(s.window, mark{at: sm.Time, distance: s.distance})

	cutoff := sm.Time.Add(-paceWindow)
	for len(s.window) > 2 && s.window[1].at.Before(cutoff) {
		s.window = s.window[1:]
	}
}

// Elapsed returns the active time at now.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.running {
		return s.active + now.Sub(s.resumedAt)
	}

	return s.active
}

// Stats returns the live statistics at now.
func (s *Session) Stats(now time.Time) Stats {
	elapsed := s.Elapsed(now)

	st := Stats{
		Elapsed:   elapsed,
		Distance:  s.distance,
		Elevation: s.elevation,
		HeartRate: s.heartRate,
		AvgPace:   pace(s.distance, elapsed),
		AvgSpeed:  speed(s.distance, elapsed),
	}

	if n := len(s.window); n >= 2 {
		first, last := s.window[0], s.window[n-1]

		d := last.distance - first.distance
		dt := last.at.Sub(first.at)

		st.Pace = pace(d, dt)
		st.Speed = speed(d, dt)
	}

	return st
}

// Finish ends the run and returns its summary.
func (s *Session) Finish(now time.Time) (Summary, error) {
	if err := s.check(); err != nil {
		return Summary{}, err
	}

	if s.running {
		s.active += now.Sub(s.resumedAt)
		s.running = false
	}

	s.finished = true

	return Summary{
		StartTime: s.startTime,
		EndTime:   now,
		Active:    s.active,
		Distance:  s.distance,
		Climb:     math.Round(s.climb),
		AvgPace:   pace(s.distance, s.active),
		AvgSpeed:  speed(s.distance, s.active),
		MaxHR:     s.maxHR,
	}, nil
}

func (s *Session) check() error {
	if !s.started {
		return errNotStarted
	}

	if s.finished {
		return errFinished
	}

	return nil
}

// minPaceDistance is the distance below which pace is not meaningful.
const minPaceDistance = 1.0

// pace returns seconds per kilometre, or zero when too little distance was
// covered.
func pace(meters float64, d time.Duration) float64 {
	if meters < minPaceDistance || d <= 0 {
		return 0
	}

	return d.Seconds() / (meters / 1000)
}

// speed returns kilometres per hour.
func speed(meters float64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}

	return (meters / 1000) / d.Hours()
}

const earthRadius = 6371008.8

// Distance returns the great circle distance in metres between two points
// given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180

	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadius * math.Asin(math.Min(1, math.Sqrt(a)))
}

package models

import (
	"time"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/run"
	"github.com/exerun/exerun/internal/session"
	"github.com/exerun/exerun/internal/workout"
)

// Workout is a finished or stopped workout as kept in the history.
type Workout struct {
	StartTime time.Time        `json:"start_time"`
	EndTime   time.Time        `json:"end_time"`
	Kind      workout.Kind     `json:"kind"`
	Completed bool             `json:"completed"`
	Active    time.Duration    `json:"active"`
	Interval  *interval.Config `json:"interval,omitempty"`
	Sets      int              `json:"sets_completed,omitempty"`
	Run       *run.Summary     `json:"run,omitempty"`
}

// FromInterval builds the history record of an interval workout.
func FromInterval(s session.Summary) *Workout {
	cfg := s.Config

	return &Workout{
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Kind:      workout.Quick,
		Completed: s.Completed,
		Active:    time.Duration(s.ActiveSeconds) * time.Second,
		Interval:  &cfg,
		Sets:      s.SetsCompleted,
	}
}

// FromRun builds the history record of a free run.
func FromRun(s run.Summary) *Workout {
	return &Workout{
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Kind:      workout.Running,
		Completed: true,
		Active:    s.Active,
		Run:       &s,
	}
}

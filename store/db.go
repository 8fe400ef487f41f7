package store

import (
	"time"

	"github.com/exerun/exerun/internal/models"
	"github.com/exerun/exerun/internal/workout"
)

// Filter narrows down a history query. Zero times are unbounded and an
// empty Kinds matches every workout.
type Filter struct {
	Since time.Time
	Until time.Time
	Kinds []workout.Kind
}

// DB is the database storage interface.
type DB interface {
	// SaveWorkout stores a workout, overwriting any workout with the same
	// start time
	SaveWorkout(w *models.Workout) error
	// Workouts returns saved workouts matching the filter, oldest first
	Workouts(f Filter) ([]models.Workout, error)
	// DeleteWorkouts deletes one or more saved workouts
	DeleteWorkouts(ws []models.Workout) error
	// Close ends the database connection
	Close() error
}

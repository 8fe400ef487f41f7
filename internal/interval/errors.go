package interval

import "github.com/exerun/exerun/internal/apperr"

var (
	// ErrInvalidConfig is returned by Start when the workout cannot begin.
	ErrInvalidConfig = &apperr.Error{
		Message: "invalid workout: %s",
	}

	// ErrNotStarted is returned when the engine is used before Start.
	ErrNotStarted = &apperr.Error{
		Message: "the workout has not been started",
	}

	// ErrPaused is returned by Tick while the workout is paused.
	ErrPaused = &apperr.Error{
		Message: "cannot tick a paused workout",
	}

	// ErrSessionOver is returned when the workout has finished or was
	// stopped.
	ErrSessionOver = &apperr.Error{
		Message: "the workout is over",
	}

	errUnknownPhase = &apperr.Error{
		Message: "unknown phase %q",
	}
)

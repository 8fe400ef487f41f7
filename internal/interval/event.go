package interval

import "fmt"

// Event is the outcome of a single tick.
type Event interface {
	fmt.Stringer
	event()
}

// CountdownTick reports the lead-in seconds left before work begins.
type CountdownTick struct {
	Remaining int
}

// CountdownFinished reports the end of the lead-in. Phase is the phase that
// was entered, which is Work unless the work period is empty.
type CountdownFinished struct {
	Phase Phase
	Set   int
}

// PhaseProgress is an ordinary tick within a work or rest period.
type PhaseProgress struct {
	Phase    Phase
	Elapsed  int
	Duration int
}

// PhaseComplete reports the end of a work or rest period and the phase that
// follows it.
type PhaseComplete struct {
	Completed Phase
	Next      Phase
	Set       int
}

// WorkoutComplete reports that every set is done. No further ticks are
// accepted.
type WorkoutComplete struct {
	Sets int
}

func (CountdownTick) event()     {}
func (CountdownFinished) event() {}
func (PhaseProgress) event()     {}
func (PhaseComplete) event()     {}
func (WorkoutComplete) event()   {}

func (e CountdownTick) String() string {
	return fmt.Sprintf("countdown %d", e.Remaining)
}

func (e CountdownFinished) String() string {
	return fmt.Sprintf("countdown finished -> %s %d", e.Phase, e.Set)
}

func (e PhaseProgress) String() string {
	return fmt.Sprintf("%s %d/%d", e.Phase, e.Elapsed, e.Duration)
}

func (e PhaseComplete) String() string {
	return fmt.Sprintf("%s complete -> %s %d", e.Completed, e.Next, e.Set)
}

func (e WorkoutComplete) String() string {
	return fmt.Sprintf("workout complete (%d sets)", e.Sets)
}

package session

import (
	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/timeutil"
)

// Cue is an audible or haptic signal.
type Cue int

const (
	CueCountdown Cue = iota
	CueGo
	CueWork
	CueRest
	CueFinish
)

func (c Cue) String() string {
	switch c {
	case CueCountdown:
		return "countdown"
	case CueGo:
		return "go"
	case CueWork:
		return "work"
	case CueRest:
		return "rest"
	case CueFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Frame is what a presenter needs to draw the current state.
type Frame struct {
	Phase     interval.Phase
	Label     string
	Clock     string
	Remaining int
	Elapsed   int
	Duration  int
	Set       int
	Sets      int
	SetsLeft  int
	Progress  float64
	Paused    bool
	Stopped   bool
}

// Presenter renders frames and plays cues. It cannot report failures back:
// a missing sound or a broken notification daemon must not affect the
// workout.
type Presenter interface {
	Render(f Frame)
	Cue(c Cue)
}

// Label returns the display name of a phase.
func Label(p interval.Phase) string {
	switch p {
	case interval.Countdown:
		return "Get Ready"
	case interval.Work:
		return "Work Time"
	case interval.Rest:
		return "Rest Time"
	case interval.Finished:
		return "Workout Finished!"
	default:
		return ""
	}
}

// FrameOf converts an engine state into a frame.
func FrameOf(s interval.State) Frame {
	f := Frame{
		Phase:     s.Phase,
		Label:     Label(s.Phase),
		Remaining: s.Remaining(),
		Elapsed:   s.Elapsed,
		Duration:  s.PhaseDuration,
		Set:       s.CurrentSet,
		Sets:      s.Sets,
		SetsLeft:  s.SetsLeft(),
		Paused:    s.Paused,
		Stopped:   s.Stopped,
	}

	f.Clock = timeutil.Clock(f.Remaining)

	if f.Duration > 0 {
		f.Progress = float64(f.Elapsed) / float64(f.Duration)
	}

	switch {
	case s.Phase == interval.Finished:
		f.Progress = 1
	case s.Stopped:
		f.Label = "Stopped"
	}

	return f
}

func cueFor(p interval.Phase) Cue {
	switch p {
	case interval.Work:
		return CueWork
	case interval.Rest:
		return CueRest
	case interval.Finished:
		return CueFinish
	default:
		return CueCountdown
	}
}

// Cuer receives cues only.
type Cuer interface {
	Cue(c Cue)
}

type withCues struct {
	Presenter
	cuers []Cuer
}

func (w withCues) Cue(c Cue) {
	w.Presenter.Cue(c)

	for _, cr := range w.cuers {
		cr.Cue(c)
	}
}

// WithCues returns a presenter that also forwards every cue to cuers.
func WithCues(p Presenter, cuers ...Cuer) Presenter {
	if len(cuers) == 0 {
		return p
	}

	return withCues{Presenter: p, cuers: cuers}
}

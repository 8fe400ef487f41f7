package interval

import "strings"

// Phase is the current segment of an interval workout.
type Phase int

const (
	Countdown Phase = iota
	Work
	Rest
	Finished
)

func (p Phase) String() string {
	switch p {
	case Countdown:
		return "Countdown"
	case Work:
		return "Work"
	case Rest:
		return "Rest"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(p.String())), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for _, v := range []Phase{Countdown, Work, Rest, Finished} {
		if strings.EqualFold(v.String(), string(b)) {
			*p = v
			return nil
		}
	}

	return errUnknownPhase.Fmt(string(b))
}

// State is a snapshot of the engine. Elapsed and PhaseDuration are in ticks.
type State struct {
	Phase              Phase `json:"phase"`
	CurrentSet         int   `json:"current_set"`
	Sets               int   `json:"sets"`
	Elapsed            int   `json:"elapsed"`
	PhaseDuration      int   `json:"phase_duration"`
	CountdownRemaining int   `json:"countdown_remaining"`
	Paused             bool  `json:"paused"`
	Stopped            bool  `json:"stopped"`
}

// Remaining returns the ticks left in the current phase.
func (s State) Remaining() int {
	if s.Phase == Countdown {
		return s.CountdownRemaining
	}

	if r := s.PhaseDuration - s.Elapsed; r > 0 {
		return r
	}

	return 0
}

// SetsLeft returns the number of sets still to be started. The set in
// progress is not counted.
func (s State) SetsLeft() int {
	if s.Phase == Countdown {
		return s.Sets
	}

	return s.Sets - s.CurrentSet
}

// Terminal reports whether the workout has finished or was stopped.
func (s State) Terminal() bool {
	return s.Stopped || s.Phase == Finished
}

// Engine advances an interval workout one tick at a time. It is not safe for
// concurrent use: the caller must serialise Tick, Pause, Resume and Stop.
type Engine struct {
	cfg     Config
	state   State
	started bool
}

// Start validates cfg and resets the engine to the beginning of the lead-in.
func (e *Engine) Start(cfg Config) (State, error) {
	if err := cfg.Validate(); err != nil {
		return State{}, err
	}

	e.cfg = cfg
	e.started = true
	e.state = State{
		Phase:              Countdown,
		Sets:               cfg.Sets,
		PhaseDuration:      LeadIn,
		CountdownRemaining: LeadIn,
	}

	return e.state, nil
}

// Config returns the configuration the engine was started with.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Tick advances the workout by one unit.
func (e *Engine) Tick() (Event, error) {
	if err := e.check(); err != nil {
		return nil, err
	}

	if e.state.Paused {
		return nil, ErrPaused
	}

	if e.state.Phase == Countdown {
		e.state.CountdownRemaining--
		e.state.Elapsed++

		if e.state.CountdownRemaining > 0 {
			return CountdownTick{Remaining: e.state.CountdownRemaining}, nil
		}

		if e.advance() {
			return WorkoutComplete{Sets: e.cfg.Sets}, nil
		}

		return CountdownFinished{
			Phase: e.state.Phase,
			Set:   e.state.CurrentSet,
		}, nil
	}

	e.state.Elapsed++

	if e.state.Elapsed < e.state.PhaseDuration {
		return PhaseProgress{
			Phase:    e.state.Phase,
			Elapsed:  e.state.Elapsed,
			Duration: e.state.PhaseDuration,
		}, nil
	}

	completed := e.state.Phase

	if e.advance() {
		return WorkoutComplete{Sets: e.cfg.Sets}, nil
	}

	return PhaseComplete{
		Completed: completed,
		Next:      e.state.Phase,
		Set:       e.state.CurrentSet,
	}, nil
}

// Pause suspends the workout. Pausing twice is a no-op.
func (e *Engine) Pause() error {
	if err := e.check(); err != nil {
		return err
	}

	e.state.Paused = true

	return nil
}

// Resume continues a paused workout from exactly where it stopped.
func (e *Engine) Resume() error {
	if err := e.check(); err != nil {
		return err
	}

	e.state.Paused = false

	return nil
}

// Stop ends the workout immediately. Stopping twice is a no-op.
func (e *Engine) Stop() error {
	if !e.started {
		return ErrNotStarted
	}

	e.state.Stopped = true
	e.state.Paused = false

	return nil
}

func (e *Engine) check() error {
	if !e.started {
		return ErrNotStarted
	}

	if e.state.Terminal() {
		return ErrSessionOver
	}

	return nil
}

// advance leaves the current phase and enters the next non-empty one. It
// reports whether the workout is finished.
func (e *Engine) advance() bool {
	for {
		next := e.following()
		if next == Finished {
			e.state.Phase = Finished
			e.state.Elapsed = 0
			e.state.PhaseDuration = 0

			return true
		}

		if next == Work {
			e.state.CurrentSet++
		}

		e.state.Phase = next
		e.state.Elapsed = 0
		e.state.CountdownRemaining = 0
		e.state.PhaseDuration = e.cfg.duration(next)

		if e.state.PhaseDuration > 0 {
			return false
		}
	}
}

// following returns the phase after the current one. The rest period of the
// final set is only played when FinalRest is set.
func (e *Engine) following() Phase {
	switch e.state.Phase {
	case Countdown:
		return Work
	case Work:
		if e.state.CurrentSet >= e.cfg.Sets && !e.cfg.FinalRest {
			return Finished
		}

		return Rest
	case Rest:
		if e.state.CurrentSet >= e.cfg.Sets {
			return Finished
		}

		return Work
	default:
		return Finished
	}
}

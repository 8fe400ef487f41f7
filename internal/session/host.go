// Package session hosts a running interval workout: it owns the engine,
// forwards user commands to it and translates engine events into frames and
// cues for a presenter
package session

import (
	"log/slog"
	"time"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/logging"
)

// Summary describes a workout once the host is done with it.
type Summary struct {
	Config        interval.Config `json:"config"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	Completed     bool            `json:"completed"`
	SetsCompleted int             `json:"sets_completed"`
	ActiveSeconds int             `json:"active_seconds"`
}

// Host drives one interval engine on behalf of a presenter. It must only be
// used from one goroutine.
type Host struct {
	engine    interval.Engine
	presenter Presenter
	logger    *slog.Logger
	now       func() time.Time
	summary   Summary
	stopped   bool
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used for event tracing.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithClock overrides the wall clock used for the summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Host) {
		if now != nil {
			h.now = now
		}
	}
}

// New starts an engine with cfg. No host is created for an invalid config.
func New(cfg interval.Config, p Presenter, opts ...Option) (*Host, error) {
	h := &Host{
		presenter: p,
		logger:    logging.Discard(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	if _, err := h.engine.Start(cfg); err != nil {
		return nil, err
	}

	h.summary = Summary{
		Config:    cfg,
		StartTime: h.now(),
	}

	h.logger.Info(
		"workout started",
		slog.Int("work", cfg.Work),
		slog.Int("rest", cfg.Rest),
		slog.Int("sets", cfg.Sets),
		slog.Bool("final_rest", cfg.FinalRest),
	)

	return h, nil
}

// Begin renders the opening frame and announces the first countdown value.
func (h *Host) Begin() {
	h.render()
	h.presenter.Cue(CueCountdown)
}

// State returns the engine state.
func (h *Host) State() interval.State {
	return h.engine.State()
}

// Frame returns the frame for the current state.
func (h *Host) Frame() Frame {
	return FrameOf(h.engine.State())
}

// Paused reports whether the workout is paused.
func (h *Host) Paused() bool {
	return h.engine.State().Paused
}

// Done reports whether the workout finished or was stopped.
func (h *Host) Done() bool {
	return h.stopped
}

// Tick advances the workout by one second. It reports true once the workout
// is over.
func (h *Host) Tick() (bool, error) {
	before := h.engine.State()

	ev, err := h.engine.Tick()
	if err != nil {
		return h.stopped, err
	}

	if before.Phase == interval.Work || before.Phase == interval.Rest {
		h.summary.ActiveSeconds++
	}

	switch e := ev.(type) {
	case interval.CountdownTick:
		h.render()
		h.presenter.Cue(CueCountdown)
	case interval.CountdownFinished:
		h.logger.Debug("countdown finished", slog.Int("set", e.Set))
		h.render()
		h.presenter.Cue(CueGo)
	case interval.PhaseProgress:
		h.render()
	case interval.PhaseComplete:
		if e.Completed == interval.Work {
			h.summary.SetsCompleted++
		}

		h.logger.Debug(
			"phase complete",
			slog.String("completed", e.Completed.String()),
			slog.String("next", e.Next.String()),
			slog.Int("set", e.Set),
		)

		h.render()
		h.presenter.Cue(cueFor(e.Next))
	case interval.WorkoutComplete:
		h.summary.SetsCompleted = e.Sets
		h.summary.Completed = true

		h.finish()
		h.render()
		h.presenter.Cue(CueFinish)

		h.logger.Info("workout complete", slog.Int("sets", e.Sets))

		return true, nil
	}

	return false, nil
}

// Pause suspends the workout.
func (h *Host) Pause() error {
	if err := h.engine.Pause(); err != nil {
		return err
	}

	h.render()

	return nil
}

// Resume continues a paused workout.
func (h *Host) Resume() error {
	if err := h.engine.Resume(); err != nil {
		return err
	}

	h.render()

	return nil
}

// Toggle pauses a running workout or resumes a paused one.
func (h *Host) Toggle() error {
	if h.Paused() {
		return h.Resume()
	}

	return h.Pause()
}

// Stop cancels the workout. Calling it after the workout is over is a
// no-op.
func (h *Host) Stop() error {
	if h.stopped {
		return nil
	}

	h.finish()
	h.render()

	h.logger.Info(
		"workout stopped",
		slog.String("phase", h.engine.State().Phase.String()),
		slog.Int("sets_completed", h.summary.SetsCompleted),
	)

	return nil
}

// Summary returns the workout summary. EndTime is zero until the workout is
// over.
func (h *Host) Summary() Summary {
	return h.summary
}

func (h *Host) finish() {
	h.stopped = true
	h.summary.EndTime = h.now()

	if err := h.engine.Stop(); err != nil {
		h.logger.Warn("stopping engine", slog.Any("error", err))
	}
}

func (h *Host) render() {
	h.presenter.Render(FrameOf(h.engine.State()))
}

// Package timer implements the terminal user interface of a workout: a
// bubbletea model for interval workouts that presents the frames of a
// session host, and one for free runs
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/logging"
	"github.com/exerun/exerun/internal/session"
)

// Options configures the timer models.
type Options struct {
	// Cues receives every cue, typically a cue.Player.
	Cues           session.Cuer
	Logger         *slog.Logger
	StatusFile     string
	DarkTheme      bool
	TwentyFourHour bool

	// Now replaces the wall clock in tests.
	Now func() time.Time
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}

	if o.Now == nil {
		o.Now = time.Now
	}
}

// tickMsg is sent once a second. Ticks scheduled before the last pause carry
// a stale id and are dropped.
type tickMsg struct {
	id   int
	time time.Time
}

func tick(id int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{id: id, time: t}
	})
}

// Interval is the bubbletea model of an interval workout. It is the
// presenter of its own session host.
type Interval struct {
	Opts     Options
	host     *session.Host
	frame    session.Frame
	progress progress.Model
	help     help.Model
	style    Style
	tickID   int
	quitting bool
}

// NewInterval creates the model and the host driving cfg.
func NewInterval(cfg interval.Config, opts Options) (*Interval, error) {
	opts.defaults()

	t := &Interval{
		Opts:     opts,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		style:    newStyle(opts.DarkTheme),
	}

	host, err := session.New(
		cfg,
		t,
		session.WithLogger(opts.Logger),
		session.WithClock(opts.Now),
	)
	if err != nil {
		return nil, err
	}

	t.host = host
	t.frame = host.Frame()

	return t, nil
}

// Render stores the frame shown by the next View call.
func (t *Interval) Render(f session.Frame) {
	t.frame = f
}

// Cue forwards c to the configured cue player.
func (t *Interval) Cue(c session.Cue) {
	if t.Opts.Cues != nil {
		t.Opts.Cues.Cue(c)
	}
}

// Summary returns the summary of the workout.
func (t *Interval) Summary() session.Summary {
	return t.host.Summary()
}

func (t *Interval) Init() tea.Cmd {
	t.host.Begin()
	t.persistStatus()

	return tick(t.tickID)
}

// persistStatus writes the status file while the workout is in progress
// and removes it afterwards.
func (t *Interval) persistStatus() {
	if t.Opts.StatusFile == "" {
		return
	}

	var err error

	if t.host.Done() {
		err = RemoveStatus(t.Opts.StatusFile)
	} else {
		err = WriteStatus(t.Opts.StatusFile, StatusOf(t.frame, t.Opts.Now()))
	}

	if err != nil {
		t.Opts.Logger.Warn("status file", slog.Any("error", err))
	}
}

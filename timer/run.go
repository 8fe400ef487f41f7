package timer

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/exerun/exerun/internal/run"
)

const (
	choiceFinish   = "finish"
	choiceContinue = "continue"
)

// Run is the bubbletea model of a free run: a stopwatch with live
// statistics, optionally fed by a recorded track.
type Run struct {
	Opts    Options
	sess    run.Session
	track   *run.Track
	cursor  *run.Cursor
	stats   run.Stats
	summary *run.Summary
	form    *huh.Form
	choice  string
	help    help.Model
	style   Style
	tickID  int
	start   time.Time
}

// NewRun creates a free run model. track may be nil.
func NewRun(track *run.Track, opts Options) *Run {
	opts.defaults()

	r := &Run{
		Opts:  opts,
		track: track,
		help:  help.New(),
		style: newStyle(opts.DarkTheme),
	}

	if track != nil {
		r.cursor = run.NewCursor(track)
	}

	return r
}

// Summary returns the summary of a finished run, or nil when the run was
// never started.
func (r *Run) Summary() *run.Summary {
	return r.summary
}

func (r *Run) Init() tea.Cmd {
	r.start = r.Opts.Now()

	if err := r.sess.Start(r.start); err != nil {
		r.Opts.Logger.Warn("starting run", slog.Any("error", err))
	}

	r.refresh(r.start)

	r.Opts.Logger.Info("run started", slog.Bool("track", r.track != nil))

	return tick(r.tickID)
}

// refresh feeds due track points into the session and recomputes the
// statistics.
func (r *Run) refresh(now time.Time) {
	if r.cursor != nil && r.sess.Running() {
		for _, p := range r.cursor.Advance(r.sess.Elapsed(now), r.start) {
			r.sess.Add(p)
		}
	}

	r.stats = r.sess.Stats(now)
}

func (r *Run) toggle() {
	now := r.Opts.Now()

	var err error
	if r.sess.Running() {
		err = r.sess.Pause(now)
	} else {
		err = r.sess.Resume(now)
	}

	if err != nil {
		r.Opts.Logger.Warn("toggle run", slog.Any("error", err))
	}

	r.refresh(now)
}

// stop pauses the run and asks whether to finish or continue.
func (r *Run) stop() tea.Cmd {
	if r.sess.Running() {
		r.toggle()
	}

	r.choice = choiceFinish
	r.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Run paused").
				Options(
					huh.NewOption("Finish", choiceFinish),
					huh.NewOption("Continue", choiceContinue),
				).
				Value(&r.choice),
		),
	).WithShowHelp(false)

	return r.form.Init()
}

// decide applies the answer to the finish/continue prompt.
func (r *Run) decide(choice string) tea.Cmd {
	r.form = nil

	if choice == choiceContinue {
		r.toggle()
		return nil
	}

	return r.finish()
}

func (r *Run) finish() tea.Cmd {
	now := r.Opts.Now()

	r.refresh(now)

	sum, err := r.sess.Finish(now)
	if err != nil {
		r.Opts.Logger.Warn("finishing run", slog.Any("error", errNoRunToFinish.Wrap(err)))
		return tea.Quit
	}

	r.summary = &sum

	r.Opts.Logger.Info(
		"run finished",
		slog.Duration("active", sum.Active),
		slog.Float64("distance", sum.Distance),
	)

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

func (r *Run) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return r, r.finish()
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	switch r.form.State {
	case huh.StateCompleted:
		return r, r.decide(r.choice)
	case huh.StateAborted:
		return r, r.decide(choiceContinue)
	}

	return r, cmd
}

func (r *Run) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t, ok := msg.(tickMsg); ok {
		if t.id != r.tickID || r.summary != nil {
			return r, nil
		}

		r.refresh(t.time)

		return r, tick(r.tickID)
	}

	if r.form != nil {
		return r.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			r.toggle()
		case key.Matches(msg, defaultKeymap.stop):
			return r, r.stop()
		case key.Matches(msg, defaultKeymap.quit):
			return r, r.finish()
		}

		return r, nil

	case tea.WindowSizeMsg:
		r.help.Width = msg.Width

		return r, nil
	}

	slog.Debug(spew.Sdump(msg))

	return r, nil
}

func (r *Run) statsView() string {
	fields := r.stats.Fields()

	cell := func(f run.Field) string {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			r.style.StatName.Render(f.Name),
			r.style.Stat.Render(f.Value),
		)
	}

	rows := make([]string, 0, len(fields)/2+1)

	for i := 0; i < len(fields); i += 2 {
		row := []string{cell(fields[i])}
		if i+1 < len(fields) {
			row = append(row, cell(fields[i+1]))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Run) View() string {
	if r.summary != nil {
		return ""
	}

	var s strings.Builder

	label, style := "Running", r.style.Work
	if !r.sess.Running() {
		label, style = "Paused", r.style.Countdown
	}

	s.WriteString(style.Render(label))

	if r.track != nil && r.track.Name != "" {
		s.WriteString(r.style.Hint.Render("replaying " + r.track.Name))
	}

	s.WriteString("\n\n" + r.statsView())

	if r.form != nil {
		s.WriteString("\n\n" + r.form.View())
	} else {
		s.WriteString("\n\n" + r.help.ShortHelpView([]key.Binding{
			defaultKeymap.togglePlay,
			defaultKeymap.stop,
			defaultKeymap.quit,
		}))
	}

	return r.style.Base.Render(s.String())
}

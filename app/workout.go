package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"

	"github.com/exerun/exerun/internal/config"
	"github.com/exerun/exerun/internal/console"
	"github.com/exerun/exerun/internal/cue"
	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/models"
	"github.com/exerun/exerun/internal/pathutil"
	"github.com/exerun/exerun/internal/run"
	"github.com/exerun/exerun/internal/session"
	"github.com/exerun/exerun/store"
	"github.com/exerun/exerun/timer"
)

// soundsFrom maps the configured sound of each cue.
func soundsFrom(cfg *config.Config) cue.Sounds {
	return cue.Sounds{
		session.CueCountdown: cfg.Sounds.Countdown,
		session.CueGo:        cfg.Sounds.Go,
		session.CueWork:      cfg.Sounds.Work,
		session.CueRest:      cfg.Sounds.Rest,
		session.CueFinish:    cfg.Sounds.Finish,
	}
}

func newPlayer(cfg *config.Config) *cue.Player {
	p := cue.NewPlayer(cue.Options{
		Sounds:   soundsFrom(cfg),
		SoundDir: pathutil.SoundDir(),
		Mute:     cfg.Sounds.Mute,
		Notify:   cfg.Notifications.Enabled,
		Logger:   slog.Default(),
	})

	p.Preload()

	return p
}

// intervalRecord returns the history record of an interval workout, or nil
// when it was stopped before the first set.
func intervalRecord(sum session.Summary) *models.Workout {
	if sum.ActiveSeconds == 0 {
		return nil
	}

	return models.FromInterval(sum)
}

// runTUI plays an interval workout in the full screen timer.
func runTUI(cfg *config.Config, player *cue.Player) (*models.Workout, error) {
	t, err := timer.NewInterval(cfg.IntervalWorkout(), timer.Options{
		Cues:           player,
		Logger:         slog.Default(),
		StatusFile:     pathutil.StatusFilePath(),
		DarkTheme:      cfg.Display.DarkTheme,
		TwentyFourHour: cfg.Display.TwentyFourHour,
	})
	if err != nil {
		return nil, err
	}

	if _, err := tea.NewProgram(t).Run(); err != nil {
		return nil, err
	}

	sum := t.Summary()

	console.PrintSummary(os.Stdout, sum)

	return intervalRecord(sum), nil
}

// statusPresenter keeps the status file in step with the frames it
// renders.
type statusPresenter struct {
	session.Presenter
	path string
	now  func() time.Time
}

func (s statusPresenter) Render(f session.Frame) {
	s.Presenter.Render(f)

	var err error

	if f.Stopped || f.Phase == interval.Finished {
		err = timer.RemoveStatus(s.path)
	} else {
		err = timer.WriteStatus(s.path, timer.StatusOf(f, s.now()))
	}

	if err != nil {
		slog.Warn("status file", slog.Any("error", err))
	}
}

// runHeadless plays an interval workout as plain lines on w until it
// completes or the process is interrupted.
func runHeadless(
	ctx context.Context,
	cfg *config.Config,
	player *cue.Player,
	w io.Writer,
) (*models.Workout, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := statusPresenter{
		Presenter: session.WithCues(console.New(w), player),
		path:      pathutil.StatusFilePath(),
		now:       time.Now,
	}

	host, err := session.New(
		cfg.IntervalWorkout(),
		p,
		session.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	if err := host.Run(ctx, ticker.C, nil); err != nil {
		return nil, err
	}

	sum := host.Summary()

	console.PrintSummary(w, sum)

	return intervalRecord(sum), nil
}

// runFree plays a free run in the full screen stopwatch.
func runFree(cfg *config.Config) (*models.Workout, error) {
	var track *run.Track

	if cfg.CLI.Track != "" {
		f, err := os.Open(cfg.CLI.Track)
		if err != nil {
			return nil, err
		}

		track, err = run.LoadGPX(f)

		_ = f.Close()

		if err != nil {
			return nil, err
		}
	}

	m := timer.NewRun(track, timer.Options{
		Logger:    slog.Default(),
		DarkTheme: cfg.Display.DarkTheme,
	})

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return nil, err
	}

	sum := m.Summary()
	if sum == nil {
		return nil, nil
	}

	printRunSummary(os.Stdout, *sum)

	return models.FromRun(*sum), nil
}

// finishWorkout saves w to the history and runs the post-workout command.
// A nil w is not saved.
func finishWorkout(db store.DB, cfg *config.Config, w *models.Workout) error {
	if w == nil {
		return nil
	}

	if err := db.SaveWorkout(w); err != nil {
		return err
	}

	slog.Info(
		"workout saved",
		slog.String("kind", string(w.Kind)),
		slog.Bool("completed", w.Completed),
	)

	return runSessionCmd(cfg.Settings.Cmd)
}

// runSessionCmd executes the post-workout command, if any.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errSessionCmd.Wrap(err)
	}

	return nil
}

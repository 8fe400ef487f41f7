// Package console renders an interval workout as plain lines of text, for
// terminals where the full screen timer is unwanted
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/session"
	"github.com/exerun/exerun/internal/timeutil"
	"github.com/exerun/exerun/internal/ui"
)

// Presenter prints a line whenever the phase, set or pause state changes,
// and every countdown second. Set Verbose to print every tick.
type Presenter struct {
	out     io.Writer
	last    session.Frame
	started bool
	Verbose bool
}

// New returns a Presenter writing to w.
func New(w io.Writer) *Presenter {
	return &Presenter{out: w}
}

func (p *Presenter) Render(f session.Frame) {
	if p.Verbose || p.changed(f) || f.Phase == interval.Countdown {
		fmt.Fprintln(p.out, Line(f))
	}

	p.last = f
	p.started = true
}

// Cue is a no-op: sounds are played by the cue player.
func (p *Presenter) Cue(session.Cue) {}

func (p *Presenter) changed(f session.Frame) bool {
	return !p.started ||
		f.Phase != p.last.Phase ||
		f.Set != p.last.Set ||
		f.Paused != p.last.Paused ||
		f.Stopped != p.last.Stopped
}

// Line formats a frame as a single line.
func Line(f session.Frame) string {
	var b strings.Builder

	b.WriteString(ui.Phase(f.Phase, "["+f.Label+"]"))
	b.WriteString(" ")
	b.WriteString(f.Clock)

	if f.Phase != interval.Countdown {
		fmt.Fprintf(&b, "  set %d/%d", f.Set, f.Sets)
	}

	fmt.Fprintf(&b, "  %s", setsLeft(f.SetsLeft))

	if f.Paused {
		b.WriteString("  ")
		b.WriteString(ui.Yellow("(paused)"))
	}

	return b.String()
}

// PrintSummary writes the outcome of a finished or stopped workout.
func PrintSummary(w io.Writer, s session.Summary) {
	status := ui.Green("completed")
	if !s.Completed {
		status = ui.Red("stopped")
	}

	ui.PrintTable(w, []string{"Workout", "Sets", "Active time", "Status"}, []string{
		fmt.Sprintf("%s work / %s rest", timeutil.Clock(s.Config.Work), timeutil.Clock(s.Config.Rest)),
		fmt.Sprintf("%d/%d", s.SetsCompleted, s.Config.Sets),
		timeutil.Clock(s.ActiveSeconds),
		status,
	})
}

func setsLeft(n int) string {
	if n == 1 {
		return "1 set left"
	}

	return fmt.Sprintf("%d sets left", n)
}

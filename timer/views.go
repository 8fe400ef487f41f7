package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/exerun/exerun/internal/interval"
)

func (t *Interval) timeFormat() string {
	if t.Opts.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (t *Interval) headerView() string {
	var s strings.Builder

	f := t.frame

	s.WriteString(t.style.phase(f.Phase).Render(f.Label))

	switch {
	case f.Paused:
		s.WriteString(t.style.Secondary.Render("[Paused]"))
	case f.Phase == interval.Countdown:
		s.WriteString(t.style.Hint.Render(
			fmt.Sprintf("%d sets to go", f.Sets),
		))
	default:
		end := t.Opts.Now().Add(time.Duration(f.Remaining) * time.Second)
		s.WriteString(t.style.Hint.Render("until " + end.Format(t.timeFormat())))
	}

	return s.String()
}

func (t *Interval) setsView() string {
	f := t.frame

	if f.Phase == interval.Countdown {
		return ""
	}

	left := "last set"

	switch {
	case f.SetsLeft == 1:
		left = "1 set left"
	case f.SetsLeft > 1:
		left = fmt.Sprintf("%d sets left", f.SetsLeft)
	}

	return t.style.Hint.Render(fmt.Sprintf("set %d/%d · %s", f.Set, f.Sets, left))
}

func (t *Interval) timerView() string {
	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(t.frame.Clock))

	if sets := t.setsView(); sets != "" {
		s.WriteString("  " + sets)
	}

	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.frame.Progress))
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.stop,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Interval) View() string {
	if t.quitting {
		return ""
	}

	return t.style.Base.Render(t.timerView())
}

package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/exerun/exerun/internal/interval"
)

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the timer views.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Countdown lipgloss.Style
	Work      lipgloss.Style
	Rest      lipgloss.Style
	Finished  lipgloss.Style
	Stat      lipgloss.Style
	StatName  lipgloss.Style
}

func newStyle(dark bool) Style {
	text, dim := lipgloss.Color("252"), lipgloss.Color("240")
	if !dark {
		text, dim = lipgloss.Color("235"), lipgloss.Color("245")
	}

	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Padding(0, 1).
		MarginRight(1)

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Hint:      lipgloss.NewStyle().Foreground(dim),
		Countdown: label.Background(lipgloss.Color("220")),
		Work:      label.Background(lipgloss.Color("46")),
		Rest:      label.Background(lipgloss.Color("33")),
		Finished:  label.Background(lipgloss.Color("135")),
		Stat:      lipgloss.NewStyle().Bold(true).Foreground(text).Width(14),
		StatName:  lipgloss.NewStyle().Foreground(dim).Width(14),
	}
}

func (s Style) phase(p interval.Phase) lipgloss.Style {
	switch p {
	case interval.Work:
		return s.Work
	case interval.Rest:
		return s.Rest
	case interval.Finished:
		return s.Finished
	default:
		return s.Countdown
	}
}

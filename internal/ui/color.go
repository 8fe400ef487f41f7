// Package ui holds the console styling shared by the headless presenter and
// the listing commands
package ui

import (
	"github.com/pterm/pterm"

	"github.com/exerun/exerun/internal/interval"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Phase colours a label by workout phase.
func Phase(p interval.Phase, a any) string {
	switch p {
	case interval.Countdown:
		return Yellow(a)
	case interval.Work:
		return Green(a)
	case interval.Rest:
		return Blue(a)
	default:
		return Highlight(a)
	}
}

package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

// handleTick advances the workout by one second.
func (t *Interval) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.id != t.tickID || t.host.Done() || t.host.Paused() {
		return t, nil
	}

	done, err := t.host.Tick()
	if err != nil {
		t.Opts.Logger.Warn("tick", slog.Any("error", err))
	}

	t.persistStatus()

	if done {
		return t, t.quit()
	}

	return t, tick(t.tickID)
}

func (t *Interval) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.host.Done() {
			return t, nil
		}

		if err := t.host.Toggle(); err != nil {
			t.Opts.Logger.Warn("toggle", slog.Any("error", err))
			return t, nil
		}

		t.tickID++
		t.persistStatus()

		if t.host.Paused() {
			return t, nil
		}

		return t, tick(t.tickID)

	case key.Matches(msg, defaultKeymap.quit),
		key.Matches(msg, defaultKeymap.stop):
		_ = t.host.Stop()

		t.persistStatus()

		return t, t.quit()
	}

	return t, nil
}

func (t *Interval) quit() tea.Cmd {
	t.quitting = true

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

func (t *Interval) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	slog.Debug(spew.Sdump(msg))

	return t, nil
}

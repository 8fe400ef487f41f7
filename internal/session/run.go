package session

import (
	"context"
	"errors"
	"time"

	"github.com/exerun/exerun/internal/interval"
)

// Command is a user action sent to a running workout.
type Command int

const (
	CmdPause Command = iota
	CmdResume
	CmdToggle
	CmdStop
)

func (c Command) String() string {
	switch c {
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdToggle:
		return "toggle"
	case CmdStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Do applies a command to the workout.
func (h *Host) Do(cmd Command) error {
	switch cmd {
	case CmdPause:
		return h.Pause()
	case CmdResume:
		return h.Resume()
	case CmdToggle:
		return h.Toggle()
	case CmdStop:
		return h.Stop()
	}

	return nil
}

// Run drives the workout from ticks until it completes, a CmdStop arrives
// or ctx is cancelled. Ticks received while paused are dropped. Cancelling
// ctx stops the workout and is not reported as an error.
func (h *Host) Run(
	ctx context.Context,
	ticks <-chan time.Time,
	cmds <-chan Command,
) error {
	h.Begin()

	for {
		select {
		case <-ctx.Done():
			return h.Stop()
		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}

			err := h.Do(cmd)
			if err != nil && !errors.Is(err, interval.ErrSessionOver) {
				return err
			}

			if h.Done() {
				return nil
			}
		case <-ticks:
			if h.Paused() {
				continue
			}

			done, err := h.Tick()
			if err != nil {
				return err
			}

			if done {
				return nil
			}
		}
	}
}

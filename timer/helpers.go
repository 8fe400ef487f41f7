package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/osutil"
	"github.com/exerun/exerun/internal/session"
	"github.com/exerun/exerun/internal/timeutil"
)

type keymap struct {
	togglePlay key.Binding
	stop       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "space", "p"),
		key.WithHelp("space", "pause/resume"),
	),
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Status is the snapshot of a running workout written to the status file
// so that other processes can report on it.
type Status struct {
	Phase     interval.Phase `json:"phase"`
	Set       int            `json:"set"`
	Sets      int            `json:"sets"`
	EndTime   time.Time      `json:"end_time"`
	Paused    bool           `json:"paused,omitempty"`
	Remaining int            `json:"remaining,omitempty"`
}

// StatusOf returns the status of frame f at now.
func StatusOf(f session.Frame, now time.Time) Status {
	s := Status{
		Phase:   f.Phase,
		Set:     f.Set,
		Sets:    f.Sets,
		EndTime: now.Add(time.Duration(f.Remaining) * time.Second),
		Paused:  f.Paused,
	}

	if f.Paused {
		s.Remaining = f.Remaining
	}

	return s
}

// Line formats the status the way the status command prints it. An empty
// string means there is nothing to report.
func (s Status) Line(now time.Time) string {
	if s.Phase == interval.Finished {
		return ""
	}

	remaining := s.Remaining

	if !s.Paused {
		remaining = int(s.EndTime.Sub(now).Round(time.Second).Seconds())
		if remaining < 0 {
			return ""
		}
	}

	text := "[" + session.Label(s.Phase) + "]"
	if s.Phase != interval.Countdown {
		text = fmt.Sprintf("[%s %d/%d]", session.Label(s.Phase), s.Set, s.Sets)
	}

	line := fmt.Sprintf("%s: %s", text, timeutil.Clock(remaining))
	if s.Paused {
		line += " (paused)"
	}

	return line
}

// WriteStatus replaces the status file at path.
func WriteStatus(path string, s Status) (err error) {
	statusFile, err := os.OpenFile(
		path,
		os.O_CREATE|os.O_TRUNC|os.O_WRONLY,
		osutil.FilePermission,
	)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = errWriteStatus.Wrap(ferr)
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	writer := bufio.NewWriter(statusFile)

	if _, err = writer.Write(b); err != nil {
		return errWriteStatus.Wrap(err)
	}

	return writer.Flush()
}

// ReadStatus reads the status file at path. A missing file yields a nil
// status and no error.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errReadStatus.Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errReadStatus.Wrap(err)
	}

	return &s, nil
}

// RemoveStatus deletes the status file, ignoring a missing one.
func RemoveStatus(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

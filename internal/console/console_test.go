package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/session"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	m.Run()
}

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		frame session.Frame
		want  string
	}{
		{
			name: "countdown",
			frame: session.Frame{
				Phase:    interval.Countdown,
				Label:    "Get Ready",
				Clock:    "00:03",
				Sets:     4,
				SetsLeft: 4,
			},
			want: "[Get Ready] 00:03  4 sets left",
		},
		{
			name: "work",
			frame: session.Frame{
				Phase:    interval.Work,
				Label:    "Work Time",
				Clock:    "00:45",
				Set:      3,
				Sets:     4,
				SetsLeft: 1,
			},
			want: "[Work Time] 00:45  set 3/4  1 set left",
		},
		{
			name: "paused rest",
			frame: session.Frame{
				Phase:    interval.Rest,
				Label:    "Rest Time",
				Clock:    "00:10",
				Set:      1,
				Sets:     2,
				SetsLeft: 1,
				Paused:   true,
			},
			want: "[Rest Time] 00:10  set 1/2  1 set left  (paused)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Line(tc.frame))
		})
	}
}

func TestPresenterPrintsChanges(t *testing.T) {
	var out bytes.Buffer

	p := New(&out)

	h, err := session.New(interval.Config{Work: 20, Rest: 10, Sets: 2}, p)
	require.NoError(t, err)

	h.Begin()

	for {
		done, err := h.Tick()
		require.NoError(t, err)

		if done {
			break
		}
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")

	assert.Equal(t, []string{
		"[Get Ready] 00:03  2 sets left",
		"[Get Ready] 00:02  2 sets left",
		"[Get Ready] 00:01  2 sets left",
		"[Work Time] 00:20  set 1/2  1 set left",
		"[Rest Time] 00:10  set 1/2  1 set left",
		"[Work Time] 00:20  set 2/2  0 sets left",
		"[Workout Finished!] 00:00  set 2/2  0 sets left",
	}, lines)
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer

	PrintSummary(&out, session.Summary{
		Config:        interval.Config{Work: 40, Rest: 20, Sets: 3},
		SetsCompleted: 2,
		ActiveSeconds: 150,
	})

	assert.Contains(t, out.String(), "00:40 work / 00:20 rest")
	assert.Contains(t, out.String(), "2/3")
	assert.Contains(t, out.String(), "02:30")
	assert.Contains(t, out.String(), "stopped")
}

package timer

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/run"
	"github.com/exerun/exerun/internal/session"
)

var t0 = time.Date(2024, 9, 1, 6, 0, 0, 0, time.UTC)

type cueRecorder []string

func (c *cueRecorder) Cue(cue session.Cue) {
	*c = append(*c, cue.String())
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestInterval(t *testing.T, cfg interval.Config) (*Interval, *cueRecorder) {
	t.Helper()

	cues := &cueRecorder{}

	m, err := NewInterval(cfg, Options{
		Cues:       cues,
		StatusFile: filepath.Join(t.TempDir(), "status.json"),
		Now:        func() time.Time { return t0 },
	})
	require.NoError(t, err)

	return m, cues
}

func TestIntervalRunsToCompletion(t *testing.T) {
	m, cues := newTestInterval(t, interval.Config{Work: 20, Rest: 10, Sets: 2})

	require.NotNil(t, m.Init())

	var cmd tea.Cmd

	for i := 0; i < 53; i++ {
		require.False(t, m.quitting)

		_, cmd = m.Update(tickMsg{id: m.tickID})
		require.NotNil(t, cmd)
	}

	assert.True(t, m.quitting)
	assert.Empty(t, m.View())

	want := []string{
		"countdown", "countdown", "countdown", "go", "rest", "work", "finish",
	}
	if diff := cmp.Diff(want, []string(*cues)); diff != "" {
		t.Fatalf("cues mismatch (-want +got):\n%s", diff)
	}

	sum := m.Summary()
	assert.True(t, sum.Completed)
	assert.Equal(t, 2, sum.SetsCompleted)
	assert.Equal(t, 50, sum.ActiveSeconds)

	st, err := ReadStatus(m.Opts.StatusFile)
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestIntervalPauseDropsStaleTicks(t *testing.T) {
	m, _ := newTestInterval(t, interval.Config{Work: 20, Rest: 10, Sets: 2})
	m.Init()

	m.Update(tickMsg{id: m.tickID})
	assert.Equal(t, 2, m.frame.Remaining)

	stale := m.tickID

	_, cmd := m.Update(keyPress('p'))
	assert.Nil(t, cmd)
	assert.True(t, m.frame.Paused)

	st, err := ReadStatus(m.Opts.StatusFile)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.True(t, st.Paused)
	assert.Equal(t, 2, st.Remaining)

	m.Update(tickMsg{id: stale})
	m.Update(tickMsg{id: m.tickID})
	assert.Equal(t, 2, m.frame.Remaining)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.NotNil(t, cmd)
	assert.False(t, m.frame.Paused)

	m.Update(tickMsg{id: stale})
	assert.Equal(t, 2, m.frame.Remaining)

	m.Update(tickMsg{id: m.tickID})
	assert.Equal(t, 1, m.frame.Remaining)
}

func TestIntervalQuitStopsWorkout(t *testing.T) {
	m, cues := newTestInterval(t, interval.Config{Work: 20, Rest: 10, Sets: 2})
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	assert.True(t, m.host.Done())
	assert.False(t, m.Summary().Completed)
	assert.Equal(t, []string{"countdown"}, []string(*cues))

	m.Update(tickMsg{id: m.tickID})
	assert.Equal(t, []string{"countdown"}, []string(*cues))
}

func TestIntervalRejectsInvalidConfig(t *testing.T) {
	_, err := NewInterval(interval.Config{Work: 10, Rest: 5, Sets: 2}, Options{})
	assert.ErrorIs(t, err, interval.ErrInvalidConfig)
}

func TestIntervalView(t *testing.T) {
	m, _ := newTestInterval(t, interval.Config{Work: 20, Rest: 10, Sets: 3})
	m.Init()

	view := m.View()
	assert.Contains(t, view, "Get Ready")
	assert.Contains(t, view, "00:03")
	assert.Contains(t, view, "3 sets to go")

	for i := 0; i < 3; i++ {
		m.Update(tickMsg{id: m.tickID})
	}

	view = m.View()
	assert.Contains(t, view, "Work Time")
	assert.Contains(t, view, "00:20")
	assert.Contains(t, view, "set 1/3")
	assert.Contains(t, view, "2 sets left")
	assert.Contains(t, view, "until 06:00:20 AM")

	m.Opts.TwentyFourHour = true
	m.Update(keyPress('p'))

	view = m.View()
	assert.Contains(t, view, "[Paused]")
	assert.NotContains(t, view, "until")
}

func TestStatusLine(t *testing.T) {
	now := t0

	cases := []struct {
		name   string
		status Status
		want   string
	}{
		{
			name: "work",
			status: Status{
				Phase: interval.Work, Set: 2, Sets: 4,
				EndTime: now.Add(75 * time.Second),
			},
			want: "[Work Time 2/4]: 01:15",
		},
		{
			name:   "countdown",
			status: Status{Phase: interval.Countdown, Sets: 4, EndTime: now.Add(2 * time.Second)},
			want:   "[Get Ready]: 00:02",
		},
		{
			name: "paused",
			status: Status{
				Phase: interval.Rest, Set: 1, Sets: 4,
				Paused: true, Remaining: 9,
			},
			want: "[Rest Time 1/4]: 00:09 (paused)",
		},
		{
			name:   "stale",
			status: Status{Phase: interval.Work, Set: 1, Sets: 4, EndTime: now.Add(-time.Minute)},
		},
		{
			name:   "finished",
			status: Status{Phase: interval.Finished, Set: 4, Sets: 4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.Line(now))
		})
	}
}

func TestStatusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	st, err := ReadStatus(path)
	require.NoError(t, err)
	assert.Nil(t, st)

	want := Status{Phase: interval.Rest, Set: 1, Sets: 3, EndTime: t0}
	require.NoError(t, WriteStatus(path, want))

	got, err := ReadStatus(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Phase, got.Phase)
	assert.True(t, want.EndTime.Equal(got.EndTime))

	require.NoError(t, RemoveStatus(path))
	require.NoError(t, RemoveStatus(path))
}

const replayGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Harbour Loop</name>
    <trkseg>
      <trkpt lat="0" lon="0"><ele>10</ele><time>2020-05-01T07:00:00Z</time></trkpt>
      <trkpt lat="0" lon="0.0009"><ele>11</ele><time>2020-05-01T07:00:30Z</time></trkpt>
      <trkpt lat="0" lon="0.0018"><ele>12</ele><time>2020-05-01T07:01:00Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>`

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) advance(d time.Duration) tickMsg {
	c.now = c.now.Add(d)
	return tickMsg{time: c.now}
}

func TestRunPauseAndFinish(t *testing.T) {
	c := &clock{now: t0}
	m := NewRun(nil, Options{Now: c.Now})

	require.NotNil(t, m.Init())

	m.Update(c.advance(30 * time.Second))
	assert.Equal(t, 30*time.Second, m.stats.Elapsed)

	m.Update(keyPress('p'))
	assert.Contains(t, m.View(), "Paused")

	m.Update(c.advance(time.Minute))
	assert.Equal(t, 30*time.Second, m.stats.Elapsed)

	m.Update(keyPress('p'))
	m.Update(c.advance(15 * time.Second))
	assert.Equal(t, 45*time.Second, m.stats.Elapsed)

	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)

	sum := m.Summary()
	require.NotNil(t, sum)
	assert.Equal(t, 45*time.Second, sum.Active)
	assert.Equal(t, t0, sum.StartTime)
	assert.Empty(t, m.View())
}

func TestRunStopPrompt(t *testing.T) {
	c := &clock{now: t0}
	m := NewRun(nil, Options{Now: c.Now})
	m.Init()

	m.Update(c.advance(10 * time.Second))
	m.Update(keyPress('s'))

	require.NotNil(t, m.form)
	assert.False(t, m.sess.Running())

	m.Update(c.advance(20 * time.Second))
	m.decide(choiceContinue)

	assert.Nil(t, m.form)
	assert.True(t, m.sess.Running())

	m.Update(keyPress('s'))
	require.NotNil(t, m.decide(choiceFinish))

	require.NotNil(t, m.Summary())
	assert.Equal(t, 10*time.Second, m.Summary().Active)
}

func TestRunReplaysTrack(t *testing.T) {
	track, err := run.LoadGPX(strings.NewReader(replayGPX))
	require.NoError(t, err)

	c := &clock{now: t0}
	m := NewRun(track, Options{Now: c.Now})
	m.Init()

	m.Update(c.advance(30 * time.Second))
	assert.InDelta(t, 100, m.stats.Distance, 2)

	m.Update(c.advance(30 * time.Second))
	assert.InDelta(t, 200, m.stats.Distance, 3)
	assert.Equal(t, 12.0, m.stats.Elevation)

	view := m.View()
	assert.Contains(t, view, "replaying Harbour Loop")
	assert.Contains(t, view, "Distance")
	assert.Contains(t, view, "0.2 km")
}

package session

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/testutil"
)

type recorder struct {
	frames []Frame
	cues   []Cue
	log    bytes.Buffer
}

func (r *recorder) Render(f Frame) {
	r.frames = append(r.frames, f)

	fmt.Fprintf(
		&r.log,
		"render %s | %s | set %d/%d | %d left\n",
		f.Label,
		f.Clock,
		f.Set,
		f.Sets,
		f.SetsLeft,
	)
}

func (r *recorder) Cue(c Cue) {
	r.cues = append(r.cues, c)

	fmt.Fprintf(&r.log, "cue %s\n", c)
}

func (r *recorder) last() Frame {
	return r.frames[len(r.frames)-1]
}

type transcript struct {
	name string
	out  []byte
}

func (tr transcript) Output() ([]byte, string) {
	return tr.out, tr.name
}

func fixedClock() func() time.Time {
	now := time.Date(2024, 5, 4, 7, 30, 0, 0, time.UTC)

	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newHost(t *testing.T, cfg interval.Config) (*Host, *recorder) {
	t.Helper()

	rec := &recorder{}

	h, err := New(cfg, rec, WithClock(fixedClock()))
	require.NoError(t, err)

	return h, rec
}

func tickAll(t *testing.T, h *Host) int {
	t.Helper()

	var n int

	for {
		done, err := h.Tick()
		require.NoError(t, err)

		n++

		if done {
			return n
		}
	}
}

func TestTranscript(t *testing.T) {
	h, rec := newHost(t, interval.Config{Work: 20, Rest: 10, Sets: 2})

	h.Begin()
	assert.Equal(t, 53, tickAll(t, h))

	testutil.CompareGoldenFile(t, transcript{
		name: t.Name(),
		out:  rec.log.Bytes(),
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	h, err := New(interval.Config{Sets: 1}, &recorder{})

	assert.Nil(t, h)
	assert.ErrorIs(t, err, interval.ErrInvalidConfig)
}

func TestCountdownCuedOncePerValue(t *testing.T) {
	h, rec := newHost(t, interval.Config{Work: 30, Rest: 30, Sets: 1})

	h.Begin()

	for i := 0; i < interval.LeadIn; i++ {
		_, err := h.Tick()
		require.NoError(t, err)
	}

	assert.Equal(t, []Cue{CueCountdown, CueCountdown, CueCountdown, CueGo}, rec.cues)

	var clocks []string
	for _, f := range rec.frames[:interval.LeadIn] {
		clocks = append(clocks, f.Clock)
	}

	assert.Equal(t, []string{"00:03", "00:02", "00:01"}, clocks)
}

func TestSummaryOnCompletion(t *testing.T) {
	cfg := interval.Config{Work: 20, Rest: 10, Sets: 3}
	h, _ := newHost(t, cfg)

	h.Begin()
	tickAll(t, h)

	s := h.Summary()

	assert.True(t, s.Completed)
	assert.True(t, h.Done())
	assert.Equal(t, 3, s.SetsCompleted)
	assert.Equal(t, cfg.Ticks()-interval.LeadIn, s.ActiveSeconds)
	assert.True(t, s.EndTime.After(s.StartTime))
	assert.True(t, h.State().Stopped)

	_, err := h.Tick()
	assert.ErrorIs(t, err, interval.ErrSessionOver)
}

func TestStopIsIdempotent(t *testing.T) {
	h, rec := newHost(t, interval.Config{Work: 30, Rest: 15, Sets: 2})

	h.Begin()

	for i := 0; i < 40; i++ {
		_, err := h.Tick()
		require.NoError(t, err)
	}

	require.NoError(t, h.Stop())

	end := h.Summary().EndTime
	frames := len(rec.frames)

	require.NoError(t, h.Stop())

	s := h.Summary()

	assert.False(t, s.Completed)
	assert.Equal(t, 1, s.SetsCompleted)
	assert.Equal(t, end, s.EndTime)
	assert.Len(t, rec.frames, frames)
	assert.Equal(t, "Stopped", rec.last().Label)
	assert.Equal(t, interval.Rest, rec.last().Phase)
}

func TestPauseFreezesFrames(t *testing.T) {
	h, rec := newHost(t, interval.Config{Work: 30, Rest: 15, Sets: 2})

	h.Begin()

	for i := 0; i < 5; i++ {
		_, err := h.Tick()
		require.NoError(t, err)
	}

	require.NoError(t, h.Toggle())
	assert.True(t, rec.last().Paused)

	frozen := rec.last()

	_, err := h.Tick()
	assert.ErrorIs(t, err, interval.ErrPaused)

	require.NoError(t, h.Toggle())
	assert.False(t, rec.last().Paused)
	assert.Equal(t, frozen.Clock, rec.last().Clock)

	_, err = h.Tick()
	require.NoError(t, err)
	assert.Equal(t, "00:27", rec.last().Clock)
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(interval.State{
		Phase:         interval.Work,
		CurrentSet:    2,
		Sets:          5,
		Elapsed:       15,
		PhaseDuration: 60,
	})

	assert.Equal(t, "Work Time", f.Label)
	assert.Equal(t, "00:45", f.Clock)
	assert.Equal(t, 3, f.SetsLeft)
	assert.InDelta(t, 0.25, f.Progress, 1e-9)

	f = FrameOf(interval.State{Phase: interval.Finished, Stopped: true, Sets: 5, CurrentSet: 5})

	assert.Equal(t, "Workout Finished!", f.Label)
	assert.Equal(t, 1.0, f.Progress)
}

func TestRunCompletes(t *testing.T) {
	cfg := interval.Config{Work: 20, Rest: 10, Sets: 2}
	h, rec := newHost(t, cfg)

	ticks := make(chan time.Time, cfg.Ticks())
	for i := 0; i < cfg.Ticks(); i++ {
		ticks <- time.Time{}
	}

	err := h.Run(context.Background(), ticks, nil)
	require.NoError(t, err)

	assert.True(t, h.Summary().Completed)
	assert.Equal(t, CueFinish, rec.cues[len(rec.cues)-1])
}

func TestRunCommands(t *testing.T) {
	h, rec := newHost(t, interval.Config{Work: 30, Rest: 30, Sets: 2})

	ticks := make(chan time.Time)
	cmds := make(chan Command)
	errc := make(chan error, 1)

	go func() {
		errc <- h.Run(context.Background(), ticks, cmds)
	}()

	ticks <- time.Time{}
	cmds <- CmdPause
	ticks <- time.Time{}
	cmds <- CmdResume
	ticks <- time.Time{}
	cmds <- CmdStop

	require.NoError(t, <-errc)

	s := h.State()

	assert.True(t, s.Stopped)
	assert.Equal(t, 1, s.CountdownRemaining)
	assert.False(t, h.Summary().Completed)
	assert.Equal(t, "Stopped", rec.last().Label)
}

func TestRunCancelledStops(t *testing.T) {
	h, _ := newHost(t, interval.Config{Work: 30, Rest: 30, Sets: 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.Run(ctx, make(chan time.Time), nil))
	assert.True(t, h.Done())
	assert.True(t, h.State().Stopped)
}

func TestWithCues(t *testing.T) {
	primary, extra := &recorder{}, &recorder{}

	p := WithCues(primary, extra)
	p.Render(Frame{Label: "Work Time"})
	p.Cue(CueWork)

	assert.Len(t, primary.frames, 1)
	assert.Empty(t, extra.frames)
	assert.Equal(t, []Cue{CueWork}, primary.cues)
	assert.Equal(t, []Cue{CueWork}, extra.cues)
}

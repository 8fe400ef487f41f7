package stats

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exerun/exerun/internal/interval"
	"github.com/exerun/exerun/internal/models"
	"github.com/exerun/exerun/internal/run"
	"github.com/exerun/exerun/internal/workout"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

// 2024-09-02 is a Monday
var monday = time.Date(2024, 9, 2, 7, 0, 0, 0, time.Local)

func workouts() []models.Workout {
	return []models.Workout{
		{
			StartTime: monday,
			EndTime:   monday.Add(10 * time.Minute),
			Kind:      workout.Quick,
			Completed: true,
			Active:    8 * time.Minute,
			Interval:  &interval.Config{Work: 40, Rest: 20, Sets: 8},
			Sets:      8,
		},
		{
			StartTime: monday.Add(2 * time.Hour),
			EndTime:   monday.Add(2*time.Hour + 30*time.Minute),
			Kind:      workout.Running,
			Completed: true,
			Active:    30 * time.Minute,
			Run:       &run.Summary{Distance: 5200},
		},
		{
			StartTime: monday.AddDate(0, 0, 2),
			EndTime:   monday.AddDate(0, 0, 2).Add(2 * time.Minute),
			Kind:      workout.Quick,
			Active:    time.Minute,
			Interval:  &interval.Config{Work: 40, Rest: 20, Sets: 8},
			Sets:      1,
		},
		{
			// never ended
			StartTime: monday.AddDate(0, 0, 3),
			Kind:      workout.Quick,
			Active:    time.Hour,
		},
	}
}

func TestCompute(t *testing.T) {
	end := monday.AddDate(0, 0, 6)

	r := Compute(workouts(), time.Time{}, end, time.Time{})

	assert.Equal(t, time.Date(2024, 9, 2, 0, 0, 0, 0, time.Local), r.Start)
	assert.Equal(t, end, r.End)
	assert.Equal(t, 3, r.Workouts)
	assert.Equal(t, 2, r.Completed)
	assert.Equal(t, 1, r.Stopped)
	assert.Equal(t, 39*time.Minute, r.Active)
	assert.Equal(t, 9, r.Sets)
	assert.InDelta(t, 5200, r.Distance, 0.001)

	assert.Equal(t, 9*time.Minute, r.Kinds[workout.Quick])
	assert.Equal(t, 30*time.Minute, r.Kinds[workout.Running])
	assert.Equal(t, 38*time.Minute, r.Weekly[time.Monday])
	assert.Equal(t, time.Minute, r.Weekly[time.Wednesday])
	assert.Equal(t, 38*time.Minute, r.Daily["2024-09-02"])
	assert.Equal(t, 6, r.Days())
}

func TestComputeDefaultsEndToNow(t *testing.T) {
	now := monday.Add(time.Hour)

	r := Compute(nil, monday, time.Time{}, now)

	assert.Equal(t, now, r.End)
	assert.Zero(t, r.Workouts)
	assert.Equal(t, 1, r.Days())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0 mins", formatDuration(20*time.Second))
	assert.Equal(t, "45 mins", formatDuration(45*time.Minute))
	assert.Equal(t, "2 hrs", formatDuration(2*time.Hour))
	assert.Equal(t, "1 hrs 5 mins", formatDuration(65*time.Minute))
}

func TestDailyBarsCoverEveryDay(t *testing.T) {
	r := Compute(workouts(), monday, monday.AddDate(0, 0, 3), time.Time{})

	bars := dailyBars(r)
	require.Len(t, bars, 4)
	assert.Equal(t, "September 02, 2024", bars[0].Label)
	assert.Equal(t, 38, bars[0].Value)
	assert.Equal(t, 0, bars[1].Value)
	assert.Equal(t, 1, bars[2].Value)
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer

	Show(&buf, Compute(workouts(), time.Time{}, monday.AddDate(0, 0, 6), time.Time{}))

	out := buf.String()
	assert.Contains(t, out, "Reporting period: September 02, 2024 - September 08, 2024")
	assert.Contains(t, out, "Active time: 39 mins")
	assert.Contains(t, out, "Workouts completed: 2")
	assert.Contains(t, out, "Distance run: 5.2 km")
	assert.Contains(t, out, "running: 30 mins")
	assert.Contains(t, out, "Daily breakdown (minutes)")
	assert.Contains(t, out, "Weekly breakdown (minutes)")
}

// Package stats reports totals and breakdowns over the workout history
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/exerun/exerun/internal/models"
	"github.com/exerun/exerun/internal/run"
	"github.com/exerun/exerun/internal/timeutil"
	"github.com/exerun/exerun/internal/ui"
	"github.com/exerun/exerun/internal/workout"
)

const (
	barChartChar  = "▇"
	noWorkoutsMsg = "No workouts found for the specified time range"
	hoursInADay   = 24
	daysInAMonth  = 31
)

// Report holds the statistics of a reporting period.
type Report struct {
	Start     time.Time
	End       time.Time
	Workouts  int
	Completed int
	Stopped   int
	Active    time.Duration
	Sets      int
	Distance  float64
	Kinds     map[workout.Kind]time.Duration
	Weekly    map[time.Weekday]time.Duration
	// Daily is keyed by local date, e.g. 2024-09-01
	Daily map[string]time.Duration
}

// Days returns the number of days in the period, at least one.
func (r *Report) Days() int {
	days := timeutil.Round(r.End.Sub(r.Start).Hours()) / hoursInADay

	return max(days, 1)
}

// filterWorkouts ensures that workouts with an invalid end date are
// ignored.
func filterWorkouts(workouts []models.Workout) []models.Workout {
	filtered := make([]models.Workout, 0, len(workouts))

	for i := range workouts {
		w := workouts[i]

		if w.EndTime.IsZero() || w.EndTime.Before(w.StartTime) {
			continue
		}

		filtered = append(filtered, w)
	}

	return filtered
}

// Compute aggregates workouts over [start, end]. A zero start means the day
// of the first workout and a zero end means now.
func Compute(workouts []models.Workout, start, end, now time.Time) *Report {
	workouts = filterWorkouts(workouts)

	if start.IsZero() && len(workouts) > 0 {
		start = timeutil.RoundToStart(workouts[0].StartTime)
	}

	if end.IsZero() {
		end = now
	}

	r := &Report{
		Start:  start,
		End:    end,
		Kinds:  make(map[workout.Kind]time.Duration),
		Weekly: make(map[time.Weekday]time.Duration),
		Daily:  make(map[string]time.Duration),
	}

	for i := range workouts {
		w := &workouts[i]

		r.Workouts++

		if w.Completed {
			r.Completed++
		} else {
			r.Stopped++
		}

		r.Active += w.Active
		r.Sets += w.Sets
		r.Kinds[w.Kind] += w.Active
		r.Weekly[w.StartTime.Weekday()] += w.Active
		r.Daily[dayKey(w.StartTime)] += w.Active

		if w.Run != nil {
			r.Distance += w.Run.Distance
		}
	}

	return r
}

func dayKey(t time.Time) string {
	return t.Local().Format(time.DateOnly)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)

	h, m := int(d.Hours()), int(d.Minutes())%60

	switch {
	case h == 0:
		return fmt.Sprintf("%d mins", m)
	case m == 0:
		return fmt.Sprintf("%d hrs", h)
	default:
		return fmt.Sprintf("%d hrs %d mins", h, m)
	}
}

// getSummary retrieves the workout summary for the reporting period.
func getSummary(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", ui.Blue("Summary"))
	fmt.Fprintf(&b, "Active time: %s\n", ui.Green(formatDuration(r.Active)))
	fmt.Fprintln(&b, "Workouts completed:", ui.Green(r.Completed))
	fmt.Fprintln(&b, "Workouts stopped:", ui.Green(r.Stopped))
	fmt.Fprintln(&b, "Sets completed:", ui.Green(r.Sets))

	if r.Distance > 0 {
		fmt.Fprintln(&b, "Distance run:", ui.Green(run.FormatDistance(r.Distance)))
	}

	return b.String()
}

func getAverages(r *Report) string {
	days := time.Duration(r.Days())

	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", ui.Blue("Daily averages"))
	fmt.Fprintf(&b, "Active time: %s\n", ui.Green(formatDuration(r.Active/days)))
	fmt.Fprintln(&b, "Workouts:", ui.Green(fmt.Sprintf("%.1f", float64(r.Workouts)/float64(days))))

	return b.String()
}

// getKinds retrieves the active time per workout kind, longest first.
func getKinds(kinds map[workout.Kind]time.Duration) string {
	if len(kinds) == 0 {
		return ""
	}

	type keyValue struct {
		key   workout.Kind
		value time.Duration
	}

	kv := make([]keyValue, 0, len(kinds))
	for k, v := range kinds {
		kv = append(kv, keyValue{k, v})
	}

	sort.SliceStable(kv, func(i, j int) bool {
		if kv[i].value == kv[j].value {
			return kv[i].key < kv[j].key
		}

		return kv[i].value > kv[j].value
	})

	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", ui.Blue("Workouts"))

	for _, v := range kv {
		fmt.Fprintf(&b, "%s: %s\n", v.key, ui.Green(formatDuration(v.value)))
	}

	return b.String()
}

func getBarChart(title string, bars pterm.Bars) string {
	if len(bars) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (minutes)", title))

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func weeklyBars(weekly map[time.Weekday]time.Duration) pterm.Bars {
	bars := make(pterm.Bars, 0, len(weekly))

	for d := time.Sunday; d <= time.Saturday; d++ {
		bars = append(bars, pterm.Bar{
			Label: d.String(),
			Value: timeutil.Round(weekly[d].Minutes()),
		})
	}

	return bars
}

// dailyBars lists every day of the period, including days without a
// workout.
func dailyBars(r *Report) pterm.Bars {
	var bars pterm.Bars

	for day := timeutil.RoundToStart(r.Start.Local()); !day.After(r.End); day = day.AddDate(0, 0, 1) {
		bars = append(bars, pterm.Bar{
			Label: day.Format("January 02, 2006"),
			Value: timeutil.Round(r.Daily[dayKey(day)].Minutes()),
		})
	}

	return bars
}

// Show writes the report for the given workouts.
func Show(w io.Writer, r *Report) {
	if r.Workouts == 0 {
		pterm.Info.Println(noWorkoutsMsg)
		return
	}

	timePeriod := "Reporting period: " + r.Start.Format("January 02, 2006") +
		" - " + r.End.Format("January 02, 2006")

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln(timePeriod)

	output := fmt.Sprint(
		header,
		getSummary(r),
		getAverages(r),
		getKinds(r.Kinds),
	)

	if r.Days() <= daysInAMonth {
		output += getBarChart("Daily", dailyBars(r))
	}

	output += getBarChart("Weekly", weeklyBars(r.Weekly))

	fmt.Fprintln(w, strings.TrimSpace(output))
}

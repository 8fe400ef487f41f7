package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/exerun/exerun/internal/models"
	"github.com/exerun/exerun/internal/run"
	"github.com/exerun/exerun/internal/timeutil"
	"github.com/exerun/exerun/internal/ui"
	"github.com/exerun/exerun/internal/workout"
)

const (
	noWorkoutsMsg = "No workouts found for the specified time range"
	dateFormat    = "Jan 02, 2006 03:04 PM"
)

// workoutDetail describes what was done in a workout.
func workoutDetail(w *models.Workout) string {
	switch {
	case w.Interval != nil:
		return fmt.Sprintf(
			"%d/%d sets of %s work / %s rest",
			w.Sets,
			w.Interval.Sets,
			timeutil.Clock(w.Interval.Work),
			timeutil.Clock(w.Interval.Rest),
		)
	case w.Run != nil:
		return fmt.Sprintf(
			"%s at %s",
			run.FormatDistance(w.Run.Distance),
			run.FormatPace(w.Run.AvgPace),
		)
	default:
		return ""
	}
}

// printWorkoutsTable prints a workout table to w.
func printWorkoutsTable(w io.Writer, workouts []models.Workout) {
	rows := make([][]string, len(workouts))

	for i := range workouts {
		wk := &workouts[i]

		statusText := ui.Green("completed")
		if !wk.Completed {
			statusText = ui.Red("stopped")
		}

		endDate := wk.EndTime.Format(dateFormat)
		if wk.EndTime.IsZero() {
			endDate = ""
		}

		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			wk.StartTime.Format(dateFormat),
			endDate,
			string(wk.Kind),
			timeutil.LongClock(wk.Active),
			workoutDetail(wk),
			statusText,
		}
	}

	ui.PrintTable(
		w,
		[]string{"#", "START DATE", "END DATE", "KIND", "ACTIVE", "DETAIL", "STATUS"},
		rows...,
	)
}

// listWorkouts prints out a table of workouts.
func listWorkouts(w io.Writer, workouts []models.Workout) {
	if len(workouts) == 0 {
		pterm.Info.Println(noWorkoutsMsg)
		return
	}

	printWorkoutsTable(w, workouts)
}

// printCatalog prints the workouts exerun knows about.
func printCatalog(w io.Writer) {
	var rows [][]string

	for i, o := range workout.Catalog() {
		command := ui.Yellow("mobile only")
		if o.Runnable() {
			command = ui.Green("exerun " + o.Command)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			o.Title,
			o.Description,
			command,
		})
	}

	ui.PrintTable(w, []string{"#", "WORKOUT", "DESCRIPTION", "COMMAND"}, rows...)
}

// printRunSummary prints the outcome of a free run.
func printRunSummary(w io.Writer, s run.Summary) {
	header := []string{"Time", "Distance", "Avg Pace", "Avg Speed", "Climb"}
	row := []string{
		timeutil.LongClock(s.Active),
		run.FormatDistance(s.Distance),
		run.FormatPace(s.AvgPace),
		run.FormatSpeed(s.AvgSpeed),
		run.FormatElevation(s.Climb),
	}

	if s.MaxHR > 0 {
		header = append(header, "Max HR")
		row = append(row, run.FormatHeartRate(s.MaxHR))
	}

	ui.PrintTable(w, header, row)
}

// printSounds lists the sound names accepted by the sounds settings.
func printSounds(w io.Writer, builtIn, custom []string, dir string) {
	fmt.Fprintf(w, "%s\n  %s\n\n", ui.Highlight("Built-in"), strings.Join(builtIn, ", "))

	if len(custom) == 0 {
		fmt.Fprintf(w, "%s\n  none, add mp3, ogg, flac or wav files to %s\n", ui.Highlight("Custom"), dir)
		return
	}

	fmt.Fprintf(w, "%s (%s)\n  %s\n", ui.Highlight("Custom"), dir, strings.Join(custom, ", "))
}

package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/exerun/exerun/internal/models"
	"github.com/exerun/exerun/store"
)

// delWorkouts deletes all the specified workouts. It requests for
// confirmation before proceeding with the operation.
func delWorkouts(
	db store.DB,
	r io.Reader,
	w io.Writer,
	workouts []models.Workout,
) error {
	if len(workouts) == 0 {
		pterm.Info.Println(noWorkoutsMsg)
		return nil
	}

	printWorkoutsTable(w, workouts)

	warning := pterm.Warning.Sprint(
		"The above workouts will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(w, warning)

	reader := bufio.NewReader(r)

	if _, err := reader.ReadString('\n'); err != nil {
		// closed input is not a confirmation
		return nil
	}

	return db.DeleteWorkouts(workouts)
}

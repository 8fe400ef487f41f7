package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes a boxed table with a header row.
func PrintTable(w io.Writer, header []string, rows ...[]string) {
	out, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(append([][]string{header}, rows...)).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(w, out)
}

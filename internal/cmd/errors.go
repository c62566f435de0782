package cmd

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/orgchart/internal/errors"
)

// PrintError writes err to w. Errors classified as user-facing are shown
// as-is; anything else is labelled with its severity.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if errors.IsUserFacing(err) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error (%s): %v\n", errors.GetSeverity(err), err)
}

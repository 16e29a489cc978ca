package cmd

import (
	"fmt"
	"io"

	"github.com/dendrascience/ufind/ufind"
)

// printCount writes the number of unique files found, for -c.
func printCount(w io.Writer, st ufind.Stats) error {
	_, err := fmt.Fprintf(w, "%d\n", st.Emitted)
	return err
}

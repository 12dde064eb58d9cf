package report

import (
	"fmt"
	"io"
)

// Format renders the report as plain text: one summary line per vocabulary
// plus an indented listing of its violations, and a closing summary line.
func Format(w io.Writer, r *Report) error {
	for _, e := range r.Entries {
		if e.Passed() {
			if _, err := fmt.Fprintf(w, "ok   %s\n", e.Reference); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "FAIL %s\n", e.Reference); err != nil {
			return err
		}
		for _, v := range e.Violations {
			if _, err := fmt.Fprintf(w, "    %s\n", v); err != nil {
				return err
			}
		}
	}

	if failed := r.FailureCount(); failed > 0 {
		_, err := fmt.Fprintf(w, "\n%d of %d vocabularies failed validation\n",
			failed, len(r.Entries))
		return err
	}
	_, err := fmt.Fprintf(w, "\nall %d vocabularies passed validation\n", len(r.Entries))
	return err
}

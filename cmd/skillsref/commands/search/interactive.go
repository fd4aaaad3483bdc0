package search

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/skillsref/internal/corpus"
	"github.com/thoreinstein/skillsref/internal/errors"
)

func runInteractiveSearch(w io.Writer, entries []corpus.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", entries[i].Name, entries[i].Source())
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			return fmt.Sprintf("Name: %s\nSource: %s\nDir: %s\n\nDescription:\n%s",
				e.Name,
				e.Source(),
				e.Dir,
				e.Description,
			)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive search failed")
	}

	e := entries[idx]
	fmt.Fprintf(w, "Selected: %s\n", e.Name)
	fmt.Fprintf(w, "Source: %s\n", e.Source())
	fmt.Fprintf(w, "Dir: %s\n", e.Dir)
	fmt.Fprintf(w, "Description: %s\n", e.Description)

	return nil
}

// Package render formats frequency distributions for output.
package render

import (
	"fmt"
	"io"

	"github.com/verte-zerg/charfreq/internal/freq"
	"github.com/verte-zerg/charfreq/internal/model"
)

// Render writes one line per surviving entry, `<char>: <value>`, shaped
// by the active display mode. The entries must already be ordered; the
// percentage total is taken over the full sequence, never a filtered
// subset.
func Render(w io.Writer, entries []freq.Entry, mode model.DisplayMode) error {
	switch mode.Kind {
	case model.ModePercent:
		total := freq.Total(entries)
		for _, e := range entries {
			percent := float64(e.Count) / float64(total) * 100
			if err := writeLine(w, e.Char, fmt.Sprintf("%.2f", percent)); err != nil {
				return err
			}
		}
	case model.ModeTopN:
		n := mode.N
		if n > len(entries) {
			n = len(entries)
		}
		for _, e := range entries[:n] {
			if err := writeCount(w, e); err != nil {
				return err
			}
		}
	case model.ModeMoreThan:
		for _, e := range entries {
			if e.Count > mode.N {
				if err := writeCount(w, e); err != nil {
					return err
				}
			}
		}
	case model.ModeLessThan:
		for _, e := range entries {
			if e.Count < mode.N {
				if err := writeCount(w, e); err != nil {
					return err
				}
			}
		}
	case model.ModeExactly:
		for _, e := range entries {
			if e.Count == mode.N {
				if err := writeCount(w, e); err != nil {
					return err
				}
			}
		}
	default:
		for _, e := range entries {
			if err := writeCount(w, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCount(w io.Writer, e freq.Entry) error {
	return writeLine(w, e.Char, fmt.Sprintf("%d", e.Count))
}

func writeLine(w io.Writer, char rune, value string) error {
	if _, err := fmt.Fprintf(w, "%c: %s\n", char, value); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

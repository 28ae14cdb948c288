package main

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"

	"github.com/college-select/college-cli/internal/model"
	"github.com/college-select/college-cli/internal/monitoring"
)

// printSelection writes the first top ranked schools and the run summary.
func printSelection(w io.Writer, ranked []model.RankedResult, snap *monitoring.RunSnapshot, top int) error {
	if top > 0 && len(ranked) > 0 {
		if err := writeRankedTable(w, ranked, top); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n--- Summary ---\n"); err != nil {
		return eris.Wrap(err, "select: write summary")
	}
	fmt.Fprintf(w, "Joined:      %d\n", snap.Joined)
	for _, s := range snap.Stages {
		fmt.Fprintf(w, "  %-22s %d -> %d\n", s.Stage, s.In, s.Out)
	}
	fmt.Fprintf(w, "Unrankable:  %d\n", snap.Unrankable)
	fmt.Fprintf(w, "Ranked:      %d\n", snap.Ranked)
	return nil
}

func writeRankedTable(w io.Writer, ranked []model.RankedResult, top int) error {
	header := fmt.Sprintf("%-4s %-40s %-25s %-8s %7s %7s %9s\n",
		"Row", "Name", "Town", "Sector", "Honors", "Rate", "Dist(km)")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "select: write table header")
	}

	for i, r := range ranked {
		if i >= top {
			break
		}
		if _, err := fmt.Fprintf(w, "%-4d %-40s %-25s %-8s %7.2f %7.1f %9.2f\n",
			i, truncate(r.Name, 40), truncate(r.Town, 25), string(r.Sector),
			r.HonorsRate, r.SuccessRatePct, r.DistanceKM,
		); err != nil {
			return eris.Wrap(err, "select: write table row")
		}
	}
	if len(ranked) > top {
		fmt.Fprintf(w, "... %d more\n", len(ranked)-top)
	}
	return nil
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

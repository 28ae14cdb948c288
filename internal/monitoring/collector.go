// Package monitoring summarizes a selection run, raises alerts on suspicious
// runs and exports run metrics for Prometheus.
package monitoring

import (
	"time"

	"github.com/college-select/college-cli/internal/filter"
	"github.com/college-select/college-cli/internal/selection"
)

// RunSnapshot is the outcome of one selection run.
type RunSnapshot struct {
	RunID          string               `json:"run_id"`
	Joined         int                  `json:"joined"`
	Stages         []filter.StageReport `json:"stages"`
	Unrankable     int                  `json:"unrankable"`
	Ranked         int                  `json:"ranked"`
	UnrankableRate float64              `json:"unrankable_rate"`
	Duration       time.Duration        `json:"duration"`
	CollectedAt    time.Time            `json:"collected_at"`
}

// Collect builds a snapshot from a session summary. UnrankableRate is the
// share of filter survivors that had no coordinates.
func Collect(runID string, sum selection.Summary, elapsed time.Duration) *RunSnapshot {
	snap := &RunSnapshot{
		RunID:       runID,
		Joined:      sum.Joined,
		Stages:      sum.Stages,
		Unrankable:  len(sum.Unrankable),
		Ranked:      sum.Ranked,
		Duration:    elapsed,
		CollectedAt: time.Now().UTC(),
	}
	if survivors := snap.Unrankable + snap.Ranked; survivors > 0 {
		snap.UnrankableRate = float64(snap.Unrankable) / float64(survivors)
	}
	return snap
}

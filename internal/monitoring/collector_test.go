package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/college-select/college-cli/internal/filter"
	"github.com/college-select/college-cli/internal/selection"
)

func TestCollect(t *testing.T) {
	sum := selection.Summary{
		Joined:     120,
		Stages:     []filter.StageReport{{Stage: "departments", In: 120, Out: 10}},
		Unrankable: []string{"A", "B"},
		Ranked:     6,
	}

	snap := Collect("run-1", sum, 3*time.Second)
	assert.Equal(t, "run-1", snap.RunID)
	assert.Equal(t, 120, snap.Joined)
	assert.Equal(t, 2, snap.Unrankable)
	assert.Equal(t, 6, snap.Ranked)
	assert.InDelta(t, 0.25, snap.UnrankableRate, 1e-9)
	assert.Equal(t, 3*time.Second, snap.Duration)
	assert.Len(t, snap.Stages, 1)
	assert.False(t, snap.CollectedAt.IsZero())
}

func TestCollect_NoSurvivors(t *testing.T) {
	snap := Collect("run-2", selection.Summary{Joined: 5}, 0)
	assert.Equal(t, 0.0, snap.UnrankableRate)
}

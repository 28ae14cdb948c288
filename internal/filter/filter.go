// Package filter narrows the joined school table with ordered, independent
// predicates.
package filter

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/college-select/college-cli/internal/model"
)

// Filter is one stage of the pipeline. Keep must not depend on other records,
// which makes stages commutative.
type Filter interface {
	Name() string
	Keep(rec model.SchoolRecord) (bool, error)
}

// StageReport records how many rows entered and survived a stage.
type StageReport struct {
	Stage string `json:"stage"`
	In    int    `json:"in"`
	Out   int    `json:"out"`
}

// Pipeline applies filters in order.
type Pipeline struct {
	stages []Filter
}

// NewPipeline returns a pipeline running stages in the given order.
func NewPipeline(stages ...Filter) *Pipeline {
	return &Pipeline{stages: stages}
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, f := range p.stages {
		names[i] = f.Name()
	}
	return names
}

// Apply runs every stage and returns the surviving records. Each stage builds a
// fresh slice; the input is never modified. The first predicate error aborts
// the run. An empty result is not an error.
func (p *Pipeline) Apply(records []model.SchoolRecord) ([]model.SchoolRecord, []StageReport, error) {
	log := zap.L().With(zap.String("component", "filter"))

	log.Debug("running filter pipeline", zap.Strings("stages", p.Stages()), zap.Int("records", len(records)))

	current := records
	reports := make([]StageReport, 0, len(p.stages))
	for _, f := range p.stages {
		next := make([]model.SchoolRecord, 0, len(current))
		for _, rec := range current {
			ok, err := f.Keep(rec)
			if err != nil {
				return nil, reports, eris.Wrapf(err, "filter: stage %s", f.Name())
			}
			if ok {
				next = append(next, rec)
			}
		}

		reports = append(reports, StageReport{Stage: f.Name(), In: len(current), Out: len(next)})
		log.Info("remaining records",
			zap.String("stage", f.Name()),
			zap.Int("in", len(current)),
			zap.Int("remaining", len(next)),
		)
		current = next
	}
	return current, reports, nil
}

// Default returns the standard four-stage pipeline for c: region/level/session,
// departments, minimum success rate, minimum honors rate.
func Default(c model.SearchCriteria) *Pipeline {
	c = c.Normalized()
	return NewPipeline(
		RegionLevelSession{Region: c.Region, Level: c.Level, Session: c.Session},
		NewDepartments(c.Departments),
		MinSuccessRate{Threshold: c.MinSuccessRate},
		MinHonorsRate{Threshold: c.MinHonorsRate},
	)
}

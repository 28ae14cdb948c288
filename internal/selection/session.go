// Package selection runs one school search: validation, join, filtering and
// ranking, with the counts of every step.
package selection

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/college-select/college-cli/internal/dataset"
	"github.com/college-select/college-cli/internal/filter"
	"github.com/college-select/college-cli/internal/model"
	"github.com/college-select/college-cli/internal/ranking"
)

// Catalog is the set of values a search may reference.
type Catalog interface {
	Regions() []string
	Departments() []string
	Towns() []string
	HasRegion(v string) bool
	HasDepartment(v string) bool
	HasTown(v string) bool
}

// Options tunes a session.
type Options struct {
	DepartmentPriorityAscending bool
}

// Summary reports the row counts of a session.
type Summary struct {
	Joined     int                  `json:"joined"`
	Stages     []filter.StageReport `json:"stages"`
	Unrankable []string             `json:"unrankable"`
	Ranked     int                  `json:"ranked"`
}

// Session is a single-use search. Call Prepare once, then Rank once.
type Session struct {
	criteria model.SearchCriteria
	opts     Options
	log      *zap.Logger

	prepared bool
	ranked   bool
	failed   error
	rankable []model.SchoolRecord
	summary  Summary
}

// New validates c against the catalog. The region, the home town and every
// department must occur in the exam-results table; the first mismatch is
// returned as a *ConfigError.
func New(catalog Catalog, c model.SearchCriteria, opts Options) (*Session, error) {
	c = c.Normalized()

	if !catalog.HasRegion(c.Region) {
		return nil, &ConfigError{Field: "region", Value: c.Region, Valid: catalog.Regions()}
	}
	if !catalog.HasTown(c.Town) {
		return nil, &ConfigError{Field: "town", Value: c.Town, Valid: catalog.Towns()}
	}
	if len(c.Departments) == 0 {
		return nil, &ConfigError{Field: "department", Value: "", Valid: catalog.Departments()}
	}
	for _, d := range c.Departments {
		if !catalog.HasDepartment(d) {
			return nil, &ConfigError{Field: "department", Value: d, Valid: catalog.Departments()}
		}
	}

	return &Session{
		criteria: c,
		opts:     opts,
		log:      zap.L().With(zap.String("component", "selection")),
	}, nil
}

// Criteria returns the normalized search criteria.
func (s *Session) Criteria() model.SearchCriteria {
	return s.criteria
}

// Prepare joins the two tables, applies the filter pipeline and sets aside the
// records that have no coordinates. Those are logged and counted, never ranked.
func (s *Session) Prepare(results []dataset.ExamResult, locations []dataset.Geolocation) error {
	if s.prepared {
		return eris.New("selection: session already prepared")
	}
	s.prepared = true

	joined := dataset.Join(results, locations)
	s.summary.Joined = len(joined)
	s.log.Info("joined tables",
		zap.Int("exam_results", len(results)),
		zap.Int("geolocations", len(locations)),
		zap.Int("records", len(joined)),
	)

	kept, reports, err := filter.Default(s.criteria).Apply(joined)
	s.summary.Stages = reports
	if err != nil {
		s.failed = eris.Wrap(err, "selection: filter")
		return s.failed
	}

	s.rankable = make([]model.SchoolRecord, 0, len(kept))
	for _, rec := range kept {
		if !rec.HasLocation() {
			s.summary.Unrankable = append(s.summary.Unrankable, rec.ID)
			s.log.Warn("no geolocation match, record excluded", zap.String("id", rec.ID), zap.String("name", rec.Name))
			continue
		}
		s.rankable = append(s.rankable, rec)
	}
	if n := len(s.summary.Unrankable); n > 0 {
		s.log.Warn("unrankable records", zap.Int("count", n))
	}
	return nil
}

// Rank orders the prepared records.
func (s *Session) Rank() ([]model.RankedResult, error) {
	if !s.prepared {
		return nil, eris.New("selection: rank before prepare")
	}
	if s.failed != nil {
		return nil, eris.Wrap(s.failed, "selection: rank after failed prepare")
	}
	if s.ranked {
		return nil, eris.New("selection: session already ranked")
	}
	s.ranked = true

	out, err := ranking.Rank(s.rankable, s.criteria.Home, ranking.Options{
		Departments:                 s.criteria.Departments,
		DepartmentPriorityAscending: s.opts.DepartmentPriorityAscending,
	})
	if err != nil {
		return nil, eris.Wrap(err, "selection: rank")
	}
	s.summary.Ranked = len(out)
	s.log.Info("ranked records", zap.Int("count", len(out)))
	return out, nil
}

// Summary returns the counts gathered so far.
func (s *Session) Summary() Summary {
	return s.summary
}

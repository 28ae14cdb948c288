package filter

import (
	"github.com/college-select/college-cli/internal/model"
)

// RegionLevelSession keeps records of one region, establishment level and
// exam session. Region and Level are expected in normalized form.
type RegionLevelSession struct {
	Region  string
	Level   string
	Session int
}

func (RegionLevelSession) Name() string { return "region_level_session" }

func (f RegionLevelSession) Keep(rec model.SchoolRecord) (bool, error) {
	return model.Normalize(rec.Region) == f.Region &&
		model.Normalize(rec.Type) == f.Level &&
		rec.Session == f.Session, nil
}

// Departments keeps records whose department is in the set.
type Departments struct {
	set map[string]struct{}
}

// NewDepartments builds a department stage from labels in any case.
func NewDepartments(deps []string) Departments {
	set := make(map[string]struct{}, len(deps))
	for _, d := range deps {
		set[model.Normalize(d)] = struct{}{}
	}
	return Departments{set: set}
}

func (Departments) Name() string { return "departments" }

func (f Departments) Keep(rec model.SchoolRecord) (bool, error) {
	_, ok := f.set[model.Normalize(rec.Department)]
	return ok, nil
}

// MinSuccessRate keeps records whose success rate is at least Threshold
// percent. Unparsable rates fail the stage with a *model.DataFormatError.
type MinSuccessRate struct {
	Threshold float64
}

func (MinSuccessRate) Name() string { return "min_success_rate" }

func (f MinSuccessRate) Keep(rec model.SchoolRecord) (bool, error) {
	v, err := rec.SuccessRatePct()
	if err != nil {
		return false, err
	}
	return v >= f.Threshold, nil
}

// MinHonorsRate keeps records whose honors rate is at least Threshold.
type MinHonorsRate struct {
	Threshold float64
}

func (MinHonorsRate) Name() string { return "min_honors_rate" }

func (f MinHonorsRate) Keep(rec model.SchoolRecord) (bool, error) {
	return rec.HonorsRate() >= f.Threshold, nil
}

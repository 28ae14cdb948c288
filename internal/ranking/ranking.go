// Package ranking orders filtered school records against a home location.
package ranking

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/college-select/college-cli/internal/geo"
	"github.com/college-select/college-cli/internal/model"
)

// Options tunes the sort.
type Options struct {
	// Departments is the user's ordered department list; a record's priority is
	// its department's index in it, -1 when absent.
	Departments []string

	// DepartmentPriorityAscending sorts department priority ascending, so the
	// first listed department ranks first. The default sorts it descending
	// like every other key.
	DepartmentPriorityAscending bool
}

// Rank derives distance, honors rate, success rate, distance rank and
// department priority for every record, then sorts by, all descending:
// honors rate, admitted count, success rate, distance rank, department
// priority. The sort is stable so full ties keep input order.
//
// Every record must carry a location.
func Rank(records []model.SchoolRecord, home geo.Point, opts Options) ([]model.RankedResult, error) {
	crit := model.SearchCriteria{Departments: opts.Departments}.Normalized()

	out := make([]model.RankedResult, 0, len(records))
	var maxDist float64
	for _, rec := range records {
		if !rec.HasLocation() {
			return nil, eris.Errorf("ranking: record %s has no location", rec.ID)
		}
		rate, err := rec.SuccessRatePct()
		if err != nil {
			return nil, eris.Wrap(err, "ranking")
		}

		d := geo.Distance(home, *rec.Location)
		if d > maxDist {
			maxDist = d
		}
		out = append(out, model.RankedResult{
			SchoolRecord:       rec,
			DistanceKM:         d,
			HonorsRate:         rec.HonorsRate(),
			SuccessRatePct:     rate,
			DepartmentPriority: crit.DepartmentPriority(rec.Department),
		})
	}
	for i := range out {
		out[i].DistanceRank = geo.Round2(maxDist - out[i].DistanceKM)
	}

	sort.SliceStable(out, less(out, opts.DepartmentPriorityAscending))
	return out, nil
}

func less(rs []model.RankedResult, priorityAscending bool) func(i, j int) bool {
	return func(i, j int) bool {
		a, b := rs[i], rs[j]
		switch {
		case a.HonorsRate != b.HonorsRate:
			return a.HonorsRate > b.HonorsRate
		case a.Admitted != b.Admitted:
			return a.Admitted > b.Admitted
		case a.SuccessRatePct != b.SuccessRatePct:
			return a.SuccessRatePct > b.SuccessRatePct
		case a.DistanceRank != b.DistanceRank:
			return a.DistanceRank > b.DistanceRank
		case a.DepartmentPriority != b.DepartmentPriority:
			if priorityAscending {
				return a.DepartmentPriority < b.DepartmentPriority
			}
			return a.DepartmentPriority > b.DepartmentPriority
		default:
			return false
		}
	}
}

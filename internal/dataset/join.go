package dataset

import (
	"strings"

	"github.com/college-select/college-cli/internal/model"
)

// joinKey canonicalizes an establishment identifier (UAI code).
func joinKey(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Join left-joins exam results with the geolocation registry on the
// establishment identifier. Every exam row is kept, in input order. A matched
// record takes the registry coordinates and the registry sector; the exam
// file's sector is used when the registry has none. When the registry lists an
// identifier more than once the first row wins.
func Join(results []ExamResult, locations []Geolocation) []model.SchoolRecord {
	byID := make(map[string]Geolocation, len(locations))
	for _, loc := range locations {
		key := joinKey(loc.ID)
		if _, seen := byID[key]; seen {
			continue
		}
		byID[key] = loc
	}

	out := make([]model.SchoolRecord, 0, len(results))
	for _, res := range results {
		rec := res.Record()
		if loc, ok := byID[joinKey(res.ID)]; ok {
			if loc.Location != nil {
				p := *loc.Location
				rec.Location = &p
			}
			if loc.Sector != "" {
				rec.Sector = loc.Sector
			}
		}
		out = append(out, rec)
	}
	return out
}

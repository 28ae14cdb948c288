// Package export writes the ranked school table as CSV, XLSX, SQLite or
// GeoJSON.
package export

import (
	"strconv"

	"github.com/college-select/college-cli/internal/model"
)

// Columns is the flat output layout. "row" is the 0-based position in the
// ranking.
var Columns = []string{
	"row",
	"id",
	"name",
	"sector",
	"type",
	"region",
	"department",
	"town",
	"session",
	"enrolled",
	"admitted",
	"admitted_highest_honors",
	"success_rate",
	"longitude",
	"latitude",
	"distance_km",
	"honors_rate",
	"distance_rank",
	"department_priority",
}

// buildRow maps a ranked result to the Columns layout.
func buildRow(i int, r model.RankedResult) []string {
	var lon, lat string
	if r.Location != nil {
		lon = formatFloat(r.Location.Lon)
		lat = formatFloat(r.Location.Lat)
	}
	return []string{
		strconv.Itoa(i),
		r.ID,
		r.Name,
		string(r.Sector),
		r.Type,
		r.Region,
		r.Department,
		r.Town,
		strconv.Itoa(r.Session),
		strconv.Itoa(r.Enrolled),
		strconv.Itoa(r.Admitted),
		strconv.Itoa(r.AdmittedHonor),
		formatFloat(r.SuccessRatePct),
		lon,
		lat,
		formatFloat(r.DistanceKM),
		formatFloat(r.HonorsRate),
		formatFloat(r.DistanceRank),
		strconv.Itoa(r.DepartmentPriority),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

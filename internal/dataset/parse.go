package dataset

import (
	"strconv"
	"strings"

	"github.com/college-select/college-cli/internal/geo"
	"github.com/college-select/college-cli/internal/model"
)

// parseIntOr parses a count column, returning def when the cell is blank or not
// a number. Integral floats ("42.0") are accepted.
func parseIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	f, err := model.ParseDecimal(s)
	if err != nil || f != float64(int(f)) {
		return def
	}
	return int(f)
}

// parsePoint returns nil unless both coordinates parse.
func parsePoint(lon, lat string) *geo.Point {
	x, err := model.ParseDecimal(lon)
	if err != nil {
		return nil
	}
	y, err := model.ParseDecimal(lat)
	if err != nil {
		return nil
	}
	return &geo.Point{Lon: x, Lat: y}
}

// normalizeCol lower-cases and trims a header label and folds typographic
// apostrophes, so "Numero d’etablissement" matches "Numero d'etablissement".
func normalizeCol(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "’", "'")
}

// mapColumnsNormalized builds a normalized column name → index map.
func mapColumnsNormalized(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		key := normalizeCol(col)
		if _, dup := m[key]; !dup {
			m[key] = i
		}
	}
	return m
}

// getColN gets a column value by normalized name, trimmed. Unknown columns and
// short rows yield "".
func getColN(record []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[normalizeCol(name)]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// missingColumns returns the labels in required that are absent from colIdx.
func missingColumns(colIdx map[string]int, required ...string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := colIdx[normalizeCol(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

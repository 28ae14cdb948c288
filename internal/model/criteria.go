package model

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/college-select/college-cli/internal/geo"
)

// LevelCollege is the establishment type label of middle schools in the DNB
// exam-results table.
const LevelCollege = "COLLEGE"

// Default search thresholds and session.
const (
	DefaultSession        = 2020
	DefaultMinSuccessRate = 97.0
	DefaultMinHonorsRate  = 0.1
)

// SearchCriteria holds one household's search parameters. It is built once per
// run and passed by value; use Normalized to get the canonical form.
type SearchCriteria struct {
	Region         string    `json:"region"`
	Departments    []string  `json:"departments"`
	Town           string    `json:"town"`
	Home           geo.Point `json:"home"`
	Session        int       `json:"session"`
	Level          string    `json:"level"`
	MinSuccessRate float64   `json:"min_success_rate"`
	MinHonorsRate  float64   `json:"min_honors_rate"`
}

// Normalized returns a copy with region, town, level and departments
// upper-cased and trimmed. The department slice is cloned so the copy never
// aliases the caller's slice. An empty level defaults to LevelCollege.
func (c SearchCriteria) Normalized() SearchCriteria {
	out := c
	out.Region = Normalize(c.Region)
	out.Town = Normalize(c.Town)
	out.Level = Normalize(c.Level)
	if out.Level == "" {
		out.Level = LevelCollege
	}
	out.Departments = make([]string, 0, len(c.Departments))
	for _, d := range c.Departments {
		if d = Normalize(d); d != "" {
			out.Departments = append(out.Departments, d)
		}
	}
	return out
}

// DepartmentPriority returns the index of dep in the ordered department list,
// or -1 when dep is not listed. Lower index means higher user preference.
func (c SearchCriteria) DepartmentPriority(dep string) int {
	return slices.Index(c.Departments, Normalize(dep))
}

// Normalize trims s and upper-cases it with French casing rules, so that
// "Île-de-France" and "ÎLE-DE-FRANCE" compare equal.
func Normalize(s string) string {
	return cases.Upper(language.French).String(strings.TrimSpace(s))
}

// ParseDepartments splits a comma-separated department list, dropping blanks.
func ParseDepartments(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseLongLat parses a "longitude,latitude" pair such as "2.487970,48.846350".
func ParseLongLat(s string) (geo.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Point{}, &CoordinateError{Value: s}
	}
	lon, err := ParseDecimal(parts[0])
	if err != nil {
		return geo.Point{}, &CoordinateError{Value: s}
	}
	lat, err := ParseDecimal(parts[1])
	if err != nil {
		return geo.Point{}, &CoordinateError{Value: s}
	}
	return geo.Point{Lon: lon, Lat: lat}, nil
}

// Package model defines the school records, search criteria and ranked results
// that flow through the selection pipeline.
package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/college-select/college-cli/internal/geo"
)

// Sector is the public/private status of an establishment.
type Sector string

const (
	SectorPublic  Sector = "PUBLIC"
	SectorPrivate Sector = "PRIVATE"
)

// ParseSector maps the open-data sector labels ("PUBLIC", "Public", "PRIVE",
// "Privé", "PRIVATE") to a Sector. Unknown labels yield "".
func ParseSector(s string) Sector {
	switch Normalize(s) {
	case "PUBLIC":
		return SectorPublic
	case "PRIVE", "PRIVÉ", "PRIVATE":
		return SectorPrivate
	default:
		return ""
	}
}

// SchoolRecord is one row of the joined exam-results/geolocation table.
// SuccessRate keeps the raw text (e.g. "98,5%"); Location is nil when the
// geolocation registry had no usable match.
type SchoolRecord struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Region        string     `json:"region"`
	Department    string     `json:"department"`
	Town          string     `json:"town"`
	Sector        Sector     `json:"sector,omitempty"`
	Type          string     `json:"type"`
	Session       int        `json:"session"`
	Enrolled      int        `json:"enrolled"`
	Admitted      int        `json:"admitted"`
	AdmittedHonor int        `json:"admitted_highest_honors"`
	SuccessRate   string     `json:"success_rate"`
	Location      *geo.Point `json:"location,omitempty"`
}

// HasLocation reports whether the record carries coordinates.
func (r SchoolRecord) HasLocation() bool {
	return r.Location != nil
}

// HonorsRate returns admitted-with-highest-honors over enrolled, rounded to 2
// decimals. A record with no enrolled students has a rate of 0.
func (r SchoolRecord) HonorsRate() float64 {
	if r.Enrolled <= 0 {
		return 0
	}
	return geo.Round2(float64(r.AdmittedHonor) / float64(r.Enrolled))
}

// SuccessRatePct parses the success-rate text as a percentage.
func (r SchoolRecord) SuccessRatePct() (float64, error) {
	v, err := ParsePercent(r.SuccessRate)
	if err != nil {
		return 0, &DataFormatError{RecordID: r.ID, Field: "success_rate", Value: r.SuccessRate}
	}
	return v, nil
}

// ParsePercent parses a French-formatted percentage such as "98,5%" or "100 %".
func ParsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	return ParseDecimal(s)
}

// ParseDecimal parses a number that may use a decimal comma.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parse decimal %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, eris.Errorf("parse decimal %q: not a finite number", s)
	}
	return v, nil
}

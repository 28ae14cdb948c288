// Package dataset loads the DNB exam-results and establishment geolocation
// exports and joins them into school records.
package dataset

import (
	"github.com/college-select/college-cli/internal/geo"
	"github.com/college-select/college-cli/internal/model"
)

// ExamResult is one row of the DNB-by-establishment table.
type ExamResult struct {
	ID            string
	Name          string
	Region        string
	Department    string
	Town          string
	Sector        model.Sector
	Type          string
	Session       int
	Enrolled      int
	Admitted      int
	AdmittedHonor int
	SuccessRate   string
}

// Geolocation is one row of the establishment registry. Location is nil when
// either coordinate is blank or unparsable.
type Geolocation struct {
	ID       string
	Sector   model.Sector
	Location *geo.Point
}

// Record converts the exam row to a SchoolRecord without location.
func (e ExamResult) Record() model.SchoolRecord {
	return model.SchoolRecord{
		ID:            e.ID,
		Name:          e.Name,
		Region:        e.Region,
		Department:    e.Department,
		Town:          e.Town,
		Sector:        e.Sector,
		Type:          e.Type,
		Session:       e.Session,
		Enrolled:      e.Enrolled,
		Admitted:      e.Admitted,
		AdmittedHonor: e.AdmittedHonor,
		SuccessRate:   e.SuccessRate,
	}
}

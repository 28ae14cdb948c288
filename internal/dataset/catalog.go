package dataset

import (
	"github.com/college-select/college-cli/internal/model"
)

// valueSet keeps distinct values in first-seen order with normalized lookup.
type valueSet struct {
	values []string
	index  map[string]struct{}
}

func (s *valueSet) add(v string) {
	key := model.Normalize(v)
	if key == "" {
		return
	}
	if _, ok := s.index[key]; ok {
		return
	}
	s.index[key] = struct{}{}
	s.values = append(s.values, v)
}

func (s *valueSet) has(v string) bool {
	_, ok := s.index[model.Normalize(v)]
	return ok
}

// Catalog lists the regions, departments and towns present in the
// exam-results table. Membership tests are case-insensitive.
type Catalog struct {
	regions     valueSet
	departments valueSet
	towns       valueSet
}

// NewCatalog builds a catalog from the full exam-results table.
func NewCatalog(results []ExamResult) *Catalog {
	c := &Catalog{
		regions:     valueSet{index: make(map[string]struct{})},
		departments: valueSet{index: make(map[string]struct{})},
		towns:       valueSet{index: make(map[string]struct{})},
	}
	for _, r := range results {
		c.regions.add(r.Region)
		c.departments.add(r.Department)
		c.towns.add(r.Town)
	}
	return c
}

// Regions returns the distinct region labels in first-seen order.
func (c *Catalog) Regions() []string { return c.regions.values }

// Departments returns the distinct department labels in first-seen order.
func (c *Catalog) Departments() []string { return c.departments.values }

// Towns returns the distinct town labels in first-seen order.
func (c *Catalog) Towns() []string { return c.towns.values }

// HasRegion, HasDepartment and HasTown test membership after normalization.
func (c *Catalog) HasRegion(v string) bool     { return c.regions.has(v) }
func (c *Catalog) HasDepartment(v string) bool { return c.departments.has(v) }
func (c *Catalog) HasTown(v string) bool       { return c.towns.has(v) }

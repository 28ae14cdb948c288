package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog([]ExamResult{
		{Region: "Île-de-France", Department: "PARIS", Town: "PARIS"},
		{Region: "ÎLE-DE-FRANCE", Department: "VAL-DE-MARNE", Town: "Vincennes"},
		{Region: "BRETAGNE", Department: "FINISTERE", Town: ""},
		{Region: "île-de-france ", Department: "Paris", Town: "VINCENNES"},
	})

	assert.Equal(t, []string{"Île-de-France", "BRETAGNE"}, c.Regions())
	assert.Equal(t, []string{"PARIS", "VAL-DE-MARNE", "FINISTERE"}, c.Departments())
	assert.Equal(t, []string{"PARIS", "Vincennes"}, c.Towns())

	assert.False(t, c.HasRegion("ile-de-france"), "accents are significant")
	assert.True(t, c.HasRegion("île-de-france"))
	assert.True(t, c.HasDepartment(" val-de-marne"))
	assert.True(t, c.HasTown("vincennes"))
	assert.False(t, c.HasTown("LYON"))
	assert.False(t, c.HasTown(""))
}

package dataset

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportURL(t *testing.T) {
	u, err := url.Parse(ExportURL(ExamResultsDataset))
	require.NoError(t, err)
	assert.Equal(t, "data.education.gouv.fr", u.Host)
	assert.Equal(t, "/explore/dataset/fr-en-dnb-par-etablissement/download/", u.Path)
	assert.Equal(t, ";", u.Query().Get("csv_separator"))
	assert.Equal(t, "true", u.Query().Get("use_labels_for_header"))
	assert.Equal(t, "csv", u.Query().Get("format"))
}

func TestSources(t *testing.T) {
	exam, geo := Sources("", "https://mirror.example/geo.csv")
	assert.Equal(t, ExportURL(ExamResultsDataset), exam.URL)
	assert.Equal(t, "fr-en-dnb-par-etablissement.csv", exam.File)
	assert.Equal(t, "https://mirror.example/geo.csv", geo.URL)
	assert.Equal(t, GeolocationDataset+".csv", geo.File)
}

package dataset

import (
	"net/url"

	"github.com/college-select/college-cli/internal/fetcher"
)

const (
	// ExamResultsDataset is the portal identifier of the DNB-by-establishment table.
	ExamResultsDataset = "fr-en-dnb-par-etablissement"
	// GeolocationDataset is the portal identifier of the establishment registry.
	GeolocationDataset = "fr-en-adresse-et-geolocalisation-etablissements-premier-et-second-degre"
)

// ExportURL builds the semicolon-separated, label-headed CSV export URL of a
// dataset on data.education.gouv.fr.
func ExportURL(dataset string) string {
	q := url.Values{}
	q.Set("format", "csv")
	q.Set("timezone", "Europe/Berlin")
	q.Set("lang", "fr")
	q.Set("use_labels_for_header", "true")
	q.Set("csv_separator", ";")
	return "https://data.education.gouv.fr/explore/dataset/" + url.PathEscape(dataset) + "/download/?" + q.Encode()
}

// Sources returns the two cached exports. Empty URLs fall back to the portal
// export of each dataset.
func Sources(examURL, geoURL string) (exam, geo fetcher.Source) {
	if examURL == "" {
		examURL = ExportURL(ExamResultsDataset)
	}
	if geoURL == "" {
		geoURL = ExportURL(GeolocationDataset)
	}
	exam = fetcher.Source{Name: "exam_results", URL: examURL, File: ExamResultsDataset + ".csv"}
	geo = fetcher.Source{Name: "geolocation", URL: geoURL, File: GeolocationDataset + ".csv"}
	return exam, geo
}

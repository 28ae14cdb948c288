package dataset

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Schema maps the fields the pipeline reads to the column labels of the two
// open-data exports. The portal occasionally renames labels; a YAML file can
// override any of them without a rebuild.
type Schema struct {
	ExamResults ExamColumns `yaml:"exam_results"`
	Geolocation GeoColumns  `yaml:"geolocation"`
}

// ExamColumns holds the DNB-by-establishment column labels.
type ExamColumns struct {
	Session       string `yaml:"session"`
	ID            string `yaml:"id"`
	Type          string `yaml:"type"`
	Name          string `yaml:"name"`
	Sector        string `yaml:"sector"`
	Town          string `yaml:"town"`
	Department    string `yaml:"department"`
	Region        string `yaml:"region"`
	Enrolled      string `yaml:"enrolled"`
	Admitted      string `yaml:"admitted"`
	AdmittedHonor string `yaml:"admitted_highest_honors"`
	SuccessRate   string `yaml:"success_rate"`
}

// GeoColumns holds the establishment geolocation registry column labels.
type GeoColumns struct {
	ID        string `yaml:"id"`
	Sector    string `yaml:"sector"`
	Longitude string `yaml:"longitude"`
	Latitude  string `yaml:"latitude"`
}

// DefaultSchema returns the labels used by data.education.gouv.fr exports
// downloaded with use_labels_for_header=true.
func DefaultSchema() Schema {
	return Schema{
		ExamResults: ExamColumns{
			Session:       "Session",
			ID:            "Numero d'etablissement",
			Type:          "Type d'etablissement",
			Name:          "Patronyme",
			Sector:        "Secteur d'enseignement",
			Town:          "Libellé commune",
			Department:    "Libellé département",
			Region:        "Libellé région",
			Enrolled:      "Inscrits",
			Admitted:      "Admis",
			AdmittedHonor: "Admis Mention très bien",
			SuccessRate:   "Taux de réussite",
		},
		Geolocation: GeoColumns{
			ID:        "Code établissement",
			Sector:    "Secteur Public/Privé",
			Longitude: "Longitude",
			Latitude:  "Latitude",
		},
	}
}

// LoadSchema reads a YAML schema override from path. Labels missing from the
// file keep their DefaultSchema value. An empty path returns the defaults.
func LoadSchema(path string) (Schema, error) {
	s := DefaultSchema()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, eris.Wrapf(err, "dataset: read schema %s", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, eris.Wrapf(err, "dataset: parse schema %s", path)
	}
	return s, nil
}

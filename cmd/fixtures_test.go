package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/college-select/college-cli/internal/config"
)

const examFixture = "Session;Numero d'etablissement;Type d'etablissement;Patronyme;Secteur d'enseignement;Libellé commune;Libellé département;Libellé région;Inscrits;Admis;Admis Mention très bien;Taux de réussite\n" +
	"2020;0750001A;COLLEGE;JEAN MOULIN;PUBLIC;PARIS;PARIS;ILE-DE-FRANCE;100;98;12;98,0%\n" +
	"2020;0750002B;COLLEGE;VICTOR HUGO;PUBLIC;PARIS;PARIS;ILE-DE-FRANCE;100;96;20;96,5%\n" +
	"2020;0750003C;COLLEGE;COLETTE;PUBLIC;PARIS;PARIS;ILE-DE-FRANCE;100;99;5;99,0%\n" +
	"2020;0940004D;COLLEGE;SAINT LOUIS;PRIVE;VINCENNES;VAL-DE-MARNE;ILE-DE-FRANCE;50;50;10;100%\n" +
	"2020;0940005E;COLLEGE;BERLIOZ;PUBLIC;VINCENNES;VAL-DE-MARNE;ILE-DE-FRANCE;80;80;20;100%\n" +
	"2020;2900006F;COLLEGE;LA TOUR;PUBLIC;BREST;FINISTERE;BRETAGNE;80;80;20;100%\n"

// 0940005E has no registry row, so it is filtered in but cannot be ranked.
const geoFixture = "Code établissement;Secteur Public/Privé;Longitude;Latitude\n" +
	"0750001A;Public;2,3522;48,8566\n" +
	"0750002B;Public;2.3400;48.8500\n" +
	"0750003C;Public;2.3300;48.8600\n" +
	"0940004D;Privé;2.4390;48.8470\n" +
	"2900006F;Public;-4.4860;48.3900\n"

// fixtureConfig writes both tables into a temp dir and returns a config that
// reads them directly.
func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	examPath := filepath.Join(dir, "dnb.csv")
	geoPath := filepath.Join(dir, "geo.csv")
	require.NoError(t, os.WriteFile(examPath, []byte(examFixture), 0o644))
	require.NoError(t, os.WriteFile(geoPath, []byte(geoFixture), 0o644))

	c := &config.Config{}
	c.Datasets.CacheDir = filepath.Join(dir, "cache")
	c.Datasets.ExamResultsFile = examPath
	c.Datasets.GeolocationFile = geoPath
	c.Datasets.Delimiter = ";"
	c.Fetch.MaxRetries = 1
	c.Fetch.RatePerSec = 100
	c.Selection.Session = 2020
	c.Selection.Level = "COLLEGE"
	c.Selection.MinSuccessRate = 97
	c.Selection.MinHonorsRate = 0.1
	c.Output.Format = "csv"
	c.Output.Path = filepath.Join(dir, "college_selection.csv")
	c.Metrics.UnrankableRateThreshold = 0.9
	c.Log.Level = "info"
	return c
}

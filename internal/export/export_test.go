package export

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/college-select/college-cli/internal/geo"
	"github.com/college-select/college-cli/internal/model"
)

func sample() []model.RankedResult {
	return []model.RankedResult{
		{
			SchoolRecord: model.SchoolRecord{
				ID: "0750001A", Name: "JEAN MOULIN", Sector: model.SectorPublic, Type: "COLLEGE",
				Region: "ÎLE-DE-FRANCE", Department: "PARIS", Town: "PARIS", Session: 2020,
				Enrolled: 100, Admitted: 98, AdmittedHonor: 12, SuccessRate: "98,0%",
				Location: &geo.Point{Lon: 2.3522, Lat: 48.8566},
			},
			DistanceKM: 0, HonorsRate: 0.12, SuccessRatePct: 98, DistanceRank: 4.23, DepartmentPriority: 0,
		},
		{
			SchoolRecord: model.SchoolRecord{
				ID: "0940002B", Name: "SAINT, LOUIS", Sector: model.SectorPrivate, Type: "COLLEGE",
				Region: "ÎLE-DE-FRANCE", Department: "VAL-DE-MARNE", Town: "VINCENNES", Session: 2020,
				Enrolled: 50, Admitted: 50, AdmittedHonor: 5, SuccessRate: "100%",
				Location: &geo.Point{Lon: 2.2945, Lat: 48.8584},
			},
			DistanceKM: 4.23, HonorsRate: 0.1, SuccessRatePct: 100, DistanceRank: 0, DepartmentPriority: 1,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, sample()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])

	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "0750001A", rows[1][1])
	assert.Equal(t, "98", rows[1][12])
	assert.Equal(t, "0.12", rows[1][16])
	assert.Equal(t, "4.23", rows[1][17])

	assert.Equal(t, "1", rows[2][0])
	assert.Equal(t, "SAINT, LOUIS", rows[2][2], "embedded comma is quoted")
	assert.Equal(t, "PRIVATE", rows[2][3])
	assert.Equal(t, "1", rows[2][18])
}

func TestWriteCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, countLines(string(data)), "header only")
}

func TestWriteCSV_BadPath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), sample())
	require.Error(t, err)
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path, sample()))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet, ok := f.Sheet[SheetName]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "row", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "JEAN MOULIN", sheet.Rows[1].Cells[2].String())
	assert.Equal(t, "VINCENNES", sheet.Rows[2].Cells[7].String())
}

func TestWriteSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.db")

	require.NoError(t, WriteSQLite(ctx, path, sample(), "run-1"))
	// second run replaces the table
	require.NoError(t, WriteSQLite(ctx, path, sample()[:1], "run-2"))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM college_selection").Scan(&n))
	assert.Equal(t, 1, n)

	var (
		runID, id string
		honors    float64
		priority  int
	)
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT run_id, id, honors_rate, department_priority FROM college_selection WHERE "row" = 0`,
	).Scan(&runID, &id, &honors, &priority))
	assert.Equal(t, "run-2", runID)
	assert.Equal(t, "0750001A", id)
	assert.Equal(t, 0.12, honors)
	assert.Equal(t, 0, priority)
}

func TestFeatureCollection(t *testing.T) {
	fc, err := FeatureCollection(sample(), MapOptions{
		Home:     geo.Point{Lon: 2.3522, Lat: 48.8566},
		HomeTown: "Paris",
	})
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	first := fc.Features[0]
	assert.Equal(t, "0750001A", first.ID)
	assert.Equal(t, SymbolPublic, first.Properties["marker-symbol"])
	assert.Equal(t, DefaultHighlight, first.Properties["marker-color"], "home town is highlighted")
	assert.Equal(t, geo.BandWalking, first.Properties["proximity"])

	second := fc.Features[1]
	assert.Equal(t, SymbolPrivate, second.Properties["marker-symbol"])
	assert.Equal(t, DefaultColors[1], second.Properties["marker-color"])
	assert.Equal(t, 1, second.Properties["row"])
	pt, ok := second.Geometry.(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, []float64{2.2945, 48.8584}, pt.FlatCoords())

	home := fc.Features[2]
	assert.Equal(t, "home", home.ID)
	assert.Equal(t, SymbolHome, home.Properties["marker-symbol"])

	require.NotNil(t, fc.BBox)
	assert.Equal(t, 2.2945, fc.BBox.Min(0))
	assert.Equal(t, 48.8584, fc.BBox.Max(1))
}

func TestFeatureCollection_MissingLocation(t *testing.T) {
	rs := sample()
	rs[1].Location = nil
	_, err := FeatureCollection(rs, MapOptions{})
	require.Error(t, err)
}

func TestWriteGeoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.geojson")
	require.NoError(t, WriteGeoJSON(path, sample(), MapOptions{HomeTown: "VINCENNES"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var fc geojson.FeatureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "0940002B", fc.Features[1].ID)
	assert.Equal(t, DefaultHighlight, fc.Features[1].Properties["marker-color"])
	assert.Equal(t, DefaultColors[0], fc.Features[0].Properties["marker-color"])
}

func TestPalette(t *testing.T) {
	var p Palette
	assert.Equal(t, DefaultColors[0], p.Color(0))
	assert.Equal(t, DefaultColors[0], p.Color(len(DefaultColors)))
	assert.Equal(t, DefaultColors[len(DefaultColors)-1], p.Color(-1))
	assert.Equal(t, DefaultHighlight, p.HighlightColor())

	custom := Palette{Colors: []string{"a", "b"}, Highlight: "h"}
	assert.Equal(t, "b", custom.Color(3))
	assert.Equal(t, "h", custom.HighlightColor())
	assert.Equal(t, custom.Color(5), custom.Color(5), "stateless")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{" XLSX ", FormatXLSX, false},
		{"sqlite", FormatSQLite, false},
		{"parquet", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_Dispatch(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	for _, f := range Formats {
		path := filepath.Join(dir, f.DefaultPath())
		require.NoError(t, Write(ctx, f, path, sample(), "run"))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), string(f))
	}

	require.Error(t, Write(ctx, Format("json"), filepath.Join(dir, "x"), sample(), "run"))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "college_selection.csv", FormatCSV.DefaultPath())
	assert.Equal(t, "college_selection.xlsx", FormatXLSX.DefaultPath())
	assert.Equal(t, "college_selection.db", FormatSQLite.DefaultPath())
}

package dataset

import (
	"context"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/college-select/college-cli/internal/fetcher"
	"github.com/college-select/college-cli/internal/model"
)

// ReadOptions configures table parsing.
type ReadOptions struct {
	Schema    Schema
	Delimiter rune   // default ';'
	Charset   string // "" = UTF-8
}

func (o ReadOptions) csvOptions() fetcher.CSVOptions {
	delim := o.Delimiter
	if delim == 0 {
		delim = ';'
	}
	return fetcher.CSVOptions{
		Delimiter:  delim,
		Charset:    o.Charset,
		LazyQuotes: true,
	}
}

// readTable drains a CSV stream into a header and its data rows.
func readTable(ctx context.Context, r io.Reader, opts ReadOptions) ([]string, [][]string, error) {
	rowCh, errCh := fetcher.StreamCSV(ctx, r, opts.csvOptions())

	var header []string
	var rows [][]string
	for row := range rowCh {
		if header == nil {
			header = row
			continue
		}
		rows = append(rows, row)
	}
	if err := <-errCh; err != nil {
		return nil, nil, err
	}
	if header == nil {
		return nil, nil, eris.New("dataset: empty table, no header row")
	}
	return header, rows, nil
}

// ReadExamResults parses the DNB exam-results table from r.
func ReadExamResults(ctx context.Context, r io.Reader, opts ReadOptions) ([]ExamResult, error) {
	header, rows, err := readTable(ctx, r, opts)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read exam results")
	}
	return parseExamResults(header, rows, opts.Schema)
}

// ReadGeolocations parses the establishment geolocation registry from r.
func ReadGeolocations(ctx context.Context, r io.Reader, opts ReadOptions) ([]Geolocation, error) {
	header, rows, err := readTable(ctx, r, opts)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read geolocations")
	}
	return parseGeolocations(header, rows, opts.Schema)
}

func parseExamResults(header []string, rows [][]string, schema Schema) ([]ExamResult, error) {
	cols := schema.ExamResults
	colIdx := mapColumnsNormalized(header)
	missing := missingColumns(colIdx,
		cols.Session, cols.ID, cols.Type, cols.Town, cols.Department, cols.Region,
		cols.Enrolled, cols.Admitted, cols.AdmittedHonor, cols.SuccessRate,
	)
	if len(missing) > 0 {
		return nil, eris.Errorf("dataset: exam results missing columns: %s", strings.Join(missing, ", "))
	}

	out := make([]ExamResult, 0, len(rows))
	for _, row := range rows {
		id := getColN(row, colIdx, cols.ID)
		if id == "" {
			continue
		}
		out = append(out, ExamResult{
			ID:            id,
			Name:          getColN(row, colIdx, cols.Name),
			Region:        getColN(row, colIdx, cols.Region),
			Department:    getColN(row, colIdx, cols.Department),
			Town:          getColN(row, colIdx, cols.Town),
			Sector:        model.ParseSector(getColN(row, colIdx, cols.Sector)),
			Type:          getColN(row, colIdx, cols.Type),
			Session:       parseIntOr(getColN(row, colIdx, cols.Session), 0),
			Enrolled:      parseIntOr(getColN(row, colIdx, cols.Enrolled), 0),
			Admitted:      parseIntOr(getColN(row, colIdx, cols.Admitted), 0),
			AdmittedHonor: parseIntOr(getColN(row, colIdx, cols.AdmittedHonor), 0),
			SuccessRate:   getColN(row, colIdx, cols.SuccessRate),
		})
	}

	zap.L().Debug("dataset: parsed exam results",
		zap.Int("rows", len(rows)),
		zap.Int("records", len(out)),
	)
	return out, nil
}

func parseGeolocations(header []string, rows [][]string, schema Schema) ([]Geolocation, error) {
	cols := schema.Geolocation
	colIdx := mapColumnsNormalized(header)
	missing := missingColumns(colIdx, cols.ID, cols.Longitude, cols.Latitude)
	if len(missing) > 0 {
		return nil, eris.Errorf("dataset: geolocations missing columns: %s", strings.Join(missing, ", "))
	}

	out := make([]Geolocation, 0, len(rows))
	var noCoords int
	for _, row := range rows {
		id := getColN(row, colIdx, cols.ID)
		if id == "" {
			continue
		}
		g := Geolocation{
			ID:       id,
			Sector:   model.ParseSector(getColN(row, colIdx, cols.Sector)),
			Location: parsePoint(getColN(row, colIdx, cols.Longitude), getColN(row, colIdx, cols.Latitude)),
		}
		if g.Location == nil {
			noCoords++
		}
		out = append(out, g)
	}

	zap.L().Debug("dataset: parsed geolocations",
		zap.Int("rows", len(rows)),
		zap.Int("records", len(out)),
		zap.Int("without_coordinates", noCoords),
	)
	return out, nil
}

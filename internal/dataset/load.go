package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/college-select/college-cli/internal/fetcher"
)

// LoadExamResults reads the exam-results table from a .csv or .xlsx file.
func LoadExamResults(ctx context.Context, path string, opts ReadOptions) ([]ExamResult, error) {
	header, rows, err := loadFile(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return parseExamResults(header, rows, opts.Schema)
}

// LoadGeolocations reads the geolocation registry from a .csv or .xlsx file.
func LoadGeolocations(ctx context.Context, path string, opts ReadOptions) ([]Geolocation, error) {
	header, rows, err := loadFile(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return parseGeolocations(header, rows, opts.Schema)
}

// loadFile dispatches on the file extension. Anything that is not .xlsx is
// read as delimited text.
func loadFile(ctx context.Context, path string, opts ReadOptions) ([]string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err := fetcher.ReadXLSX(path, fetcher.XLSXOptions{})
		if err != nil {
			return nil, nil, eris.Wrapf(err, "dataset: load %s", path)
		}
		if len(rows) == 0 {
			return nil, nil, eris.Errorf("dataset: load %s: empty sheet", path)
		}
		return rows[0], rows[1:], nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	header, rows, err := readTable(ctx, f, opts)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "dataset: load %s", path)
	}
	return header, rows, nil
}

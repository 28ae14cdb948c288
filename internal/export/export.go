package export

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/college-select/college-cli/internal/model"
)

// Format is an output table format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatCSV, FormatXLSX, FormatSQLite}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", eris.Errorf("export: unknown format %q (want csv, xlsx or sqlite)", s)
}

// DefaultPath returns the default output file name for f.
func (f Format) DefaultPath() string {
	switch f {
	case FormatXLSX:
		return "college_selection.xlsx"
	case FormatSQLite:
		return "college_selection.db"
	default:
		return "college_selection.csv"
	}
}

// Write materializes the ranked table at path in format f. runID tags SQLite
// rows and is ignored by the file formats.
func Write(ctx context.Context, f Format, path string, results []model.RankedResult, runID string) error {
	if path == "" {
		path = f.DefaultPath()
	}
	switch f {
	case FormatCSV:
		return WriteCSV(path, results)
	case FormatXLSX:
		return WriteXLSX(path, results)
	case FormatSQLite:
		return WriteSQLite(ctx, path, results, runID)
	default:
		return eris.Errorf("export: unknown format %q", f)
	}
}

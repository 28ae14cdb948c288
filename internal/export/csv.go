package export

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/college-select/college-cli/internal/model"
)

// WriteCSV writes the ranked table as a comma-delimited CSV file with a header
// row.
func WriteCSV(path string, results []model.RankedResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "csv export: create file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = eris.Wrap(cerr, "csv export: close file")
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return eris.Wrap(err, "csv export: write header")
	}
	for i, r := range results {
		if err := w.Write(buildRow(i, r)); err != nil {
			return eris.Wrap(err, "csv export: write row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "csv export: flush")
}

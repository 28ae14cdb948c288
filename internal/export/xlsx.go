package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/college-select/college-cli/internal/model"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "college_selection"

// WriteXLSX writes the ranked table to a single-sheet workbook.
func WriteXLSX(path string, results []model.RankedResult) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "xlsx export: add sheet")
	}

	addRow(sheet, Columns)
	for i, r := range results {
		addRow(sheet, buildRow(i, r))
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "xlsx export: save")
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

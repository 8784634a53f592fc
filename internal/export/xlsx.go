package export

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/datapurity/purity-cli/internal/model"
)

// XLSX writes the contacts as a single-sheet workbook. Issues are joined
// with the Arabic comma; the semicolon is reserved for the CSV format.
func XLSX(w io.Writer, contacts []model.Contact) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	hr := sheet.AddRow()
	for _, h := range headers {
		hr.AddCell().SetString(h)
	}
	for i, width := range colWidths {
		sheet.SetColWidth(i, i, width)
	}

	for i := range contacts {
		c := &contacts[i]
		row := sheet.AddRow()
		for _, v := range recordCells(c) {
			row.AddCell().SetString(v)
		}
		row.AddCell().SetString(strings.Join(c.Issues, "، "))
	}

	return eris.Wrap(f.Write(w), "export: write workbook")
}

package decode

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/datapurity/purity-cli/internal/model"
)

// Workbook parses XLSX bytes into a matrix. Only the first sheet is read;
// additional sheets are ignored. Native cell types are preserved where the
// format records them: numeric cells become float64, boolean cells become
// bool, everything else is stringified.
func Workbook(data []byte) (*model.RawMatrix, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open binary")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Wrap(ErrEmptyFile, "xlsx: no sheets")
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.Wrap(ErrEmptyFile, "xlsx")
	}

	headers := make([]string, len(sheet.Rows[0].Cells))
	for i, cell := range sheet.Rows[0].Cells {
		headers[i] = strings.TrimSpace(cell.String())
	}

	rows := make([][]model.Cell, 0, len(sheet.Rows)-1)
	for _, r := range sheet.Rows[1:] {
		row := make([]model.Cell, len(r.Cells))
		for i, cell := range r.Cells {
			row[i] = cellValue(cell)
		}
		rows = append(rows, row)
	}

	return &model.RawMatrix{Headers: headers, Rows: rows}, nil
}

func cellValue(cell *xlsx.Cell) model.Cell {
	switch cell.Type() {
	case xlsx.CellTypeBool:
		return cell.Bool()
	case xlsx.CellTypeNumeric:
		if v, err := cell.Float(); err == nil {
			return v
		}
		return cell.String()
	default:
		return cell.String()
	}
}

package export

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/datapurity/purity-cli/internal/model"
)

// utf8BOM makes downstream spreadsheet tools detect UTF-8 and render the
// Arabic headers correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV writes the contacts as BOM-prefixed UTF-8 CSV. Issues are joined with
// a semicolon so they survive inside a comma-delimited file.
func CSV(w io.Writer, contacts []model.Contact) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return eris.Wrap(err, "export: write bom")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for i := range contacts {
		c := &contacts[i]
		record := append(recordCells(c), strings.Join(c.Issues, "; "))
		if err := cw.Write(record); err != nil {
			return eris.Wrapf(err, "export: write csv row %d", c.ID)
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

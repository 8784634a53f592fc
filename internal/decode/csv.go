package decode

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/datapurity/purity-cli/internal/model"
)

// CSV parses comma-delimited text into a matrix. The first record is the
// header row. A leading byte-order mark (UTF-8 or UTF-16) is stripped before
// parsing; blank physical lines are skipped by the reader and never counted
// as data rows.
func CSV(data []byte) (*model.RawMatrix, error) {
	// BOMOverride switches to UTF-16 when a UTF-16 BOM is present and
	// otherwise passes UTF-8 through, dropping a UTF-8 BOM if one exists.
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(bytes.NewReader(data), decoder))
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, eris.Wrap(ErrEmptyFile, "csv")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([][]model.Cell, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]model.Cell, len(record))
		for i, v := range record {
			row[i] = v
		}
		rows = append(rows, row)
	}

	return &model.RawMatrix{Headers: headers, Rows: rows}, nil
}

// Package decode converts raw CSV and workbook bytes into the uniform
// headers+rows matrix consumed by the cleaning pipeline.
package decode

import (
	"github.com/rotisserie/eris"

	"github.com/datapurity/purity-cli/internal/model"
)

// ErrEmptyFile is returned when the decoded matrix has zero rows, header
// row included.
var ErrEmptyFile = eris.New("decode: empty file")

// Kind identifies a decodable input format.
type Kind string

const (
	KindCSV      Kind = "csv"
	KindWorkbook Kind = "workbook"
)

// Decode parses the bytes according to kind and returns the matrix. Headers
// are whitespace-trimmed; column and row order match the source exactly.
func Decode(data []byte, kind Kind) (*model.RawMatrix, error) {
	switch kind {
	case KindCSV:
		return CSV(data)
	case KindWorkbook:
		return Workbook(data)
	default:
		return nil, eris.Errorf("decode: unknown kind %q", kind)
	}
}

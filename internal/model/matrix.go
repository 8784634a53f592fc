package model

import (
	"strconv"
	"strings"
)

// Cell is a single spreadsheet value: string, float64, bool, or nil when the
// source cell is absent.
type Cell any

// RawMatrix is the uniform headers+rows representation produced by decoding
// any supported input. It is never mutated after the decoder returns it.
type RawMatrix struct {
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"rows"`
}

// CellString renders a cell for field extraction. Numbers drop a trailing
// ".0" so phone columns typed as numeric survive the round trip.
func CellString(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// RowIsBlank reports whether every cell in the row is empty or whitespace.
func RowIsBlank(row []Cell) bool {
	for _, c := range row {
		if strings.TrimSpace(CellString(c)) != "" {
			return false
		}
	}
	return true
}

// Field names a semantic contact column.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldCompany Field = "company"
	FieldAddress Field = "address"
	FieldNotes   Field = "notes"
)

// ColumnMap assigns semantic fields to zero-based column indices. A field
// absent from the source simply has no entry.
type ColumnMap map[Field]int

// Lookup returns the cell for the field, and whether the field was mapped at
// all. A mapped column with a short row yields ("", true).
func (m ColumnMap) Lookup(row []Cell, f Field) (string, bool) {
	idx, ok := m[f]
	if !ok {
		return "", false
	}
	if idx >= len(row) {
		return "", true
	}
	return CellString(row[idx]), true
}

package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datapurity/purity-cli/internal/model"
)

func TestCSV_Basic(t *testing.T) {
	m, err := CSV([]byte("Name,Email,Phone\nAli,ali@x.com,0512345678\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Email", "Phone"}, m.Headers)
	require.Len(t, m.Rows, 1)
	assert.Equal(t, []model.Cell{"Ali", "ali@x.com", "0512345678"}, m.Rows[0])
}

func TestCSV_TrimsHeaders(t *testing.T) {
	m, err := CSV([]byte(" Name , Email \nAli,ali@x.com\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Email"}, m.Headers)
}

func TestCSV_SkipsBlankLines(t *testing.T) {
	m, err := CSV([]byte("a,b\n\n1,2\n\n\n3,4\n"))
	require.NoError(t, err)
	require.Len(t, m.Rows, 2)
	assert.Equal(t, []model.Cell{"1", "2"}, m.Rows[0])
	assert.Equal(t, []model.Cell{"3", "4"}, m.Rows[1])
}

func TestCSV_AllCommaRowIsNotBlankLine(t *testing.T) {
	// ",," is a physical row of empty cells, not a blank line.
	m, err := CSV([]byte("a,b,c\n,,\n"))
	require.NoError(t, err)
	require.Len(t, m.Rows, 1)
	assert.True(t, model.RowIsBlank(m.Rows[0]))
}

func TestCSV_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("الاسم,بريد\nعلي,ali@x.com\n")...)
	m, err := CSV(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"الاسم", "بريد"}, m.Headers)
}

func TestCSV_RaggedRows(t *testing.T) {
	m, err := CSV([]byte("a,b,c\n1\n1,2,3,4\n"))
	require.NoError(t, err)
	require.Len(t, m.Rows, 2)
	assert.Len(t, m.Rows[0], 1)
	assert.Len(t, m.Rows[1], 4)
}

func TestCSV_Empty(t *testing.T) {
	_, err := CSV(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyFile))
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := Decode([]byte("x"), Kind("parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

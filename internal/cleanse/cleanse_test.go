package cleanse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datapurity/purity-cli/internal/model"
)

func TestText(t *testing.T) {
	assert.Equal(t, "Ali Hassan", Text("  Ali   Hassan "))
	assert.Equal(t, "a b c", Text("a\tb\n c"))
	assert.Equal(t, "", Text("   "))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "ali@x.com", Email(" ALI@X.COM "))
	assert.Equal(t, "ali@x.com", Email("ali@x.com"))
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"saudi local 05", "0512345678", "+966512345678"},
		{"saudi bare 9 digit", "512345678", "+966512345678"},
		{"already rewritten", "+966512345678", "+966512345678"},
		{"international untouched", "+19995551234", "+19995551234"},
		{"formatting stripped", "05 1234-5678", "+966512345678"},
		{"plus only leading", "+1 (999) 555+1234", "+19995551234"},
		{"plus after stray spaces", "  +19995551234", "+19995551234"},
		{"other shapes pass through", "12345", "12345"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.in))
		})
	}
}

func TestPhone_Idempotent(t *testing.T) {
	for _, in := range []string{"0512345678", "512345678", "+19995551234"} {
		once := Phone(in)
		assert.Equal(t, once, Phone(once), "input %q", in)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("ali@x.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.sa"))
	assert.False(t, ValidEmail("ali@x"))
	assert.False(t, ValidEmail("@x.com"))
	assert.False(t, ValidEmail("ali@.com@"))
	assert.False(t, ValidEmail("ali x@y.com"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+966512345678"))
	assert.True(t, ValidPhone("+19995551234"))
	assert.False(t, ValidPhone("+96651234567"))   // 8 digits after +966
	assert.False(t, ValidPhone("+123456789"))     // 9 digits, not Saudi
	assert.False(t, ValidPhone("0512345678"))     // missing +
	assert.False(t, ValidPhone("+1234567890123456")) // 16 digits
}

func TestTracker_OrderSensitive(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.Observe("a@b.com", ""))
	assert.True(t, tr.Observe("a@b.com", ""))
	assert.False(t, tr.Observe("", "+966512345678"))
	assert.True(t, tr.Observe("c@d.com", "+966512345678"))
}

func TestTracker_EmptyValuesNeverCollide(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.Observe("", ""))
	assert.False(t, tr.Observe("", ""))
}

func TestExtract_CleanRow(t *testing.T) {
	cols := model.ColumnMap{model.FieldName: 0, model.FieldEmail: 1, model.FieldPhone: 2}
	c := Extract([]model.Cell{" Ali ", "ALI@X.com", "0512345678"}, cols, 1, NewTracker())

	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "Ali", c.Name)
	assert.Equal(t, "ali@x.com", c.Email)
	assert.Equal(t, "+966512345678", c.Phone)
	assert.Empty(t, c.Issues)
	assert.Equal(t, model.StatusValid, c.Status())
	assert.Nil(t, c.Company)
}

func TestExtract_MissingNameIsErrorOnly(t *testing.T) {
	cols := model.ColumnMap{model.FieldName: 0, model.FieldEmail: 1, model.FieldPhone: 2}
	c := Extract([]model.Cell{"", "ali@x.com", "0512345678"}, cols, 1, NewTracker())

	assert.Equal(t, model.StatusError, c.Status())
	require.Equal(t, []string{model.IssueMissingName}, c.Issues)
}

func TestExtract_MissingBothContactMethods(t *testing.T) {
	cols := model.ColumnMap{model.FieldName: 0, model.FieldEmail: 1, model.FieldPhone: 2}
	c := Extract([]model.Cell{"Ali", "", ""}, cols, 1, NewTracker())

	assert.Equal(t, model.StatusError, c.Status())
	assert.Equal(t, []string{model.IssueMissingReach}, c.Issues)
}

func TestExtract_InvalidFormatsAreWarnings(t *testing.T) {
	cols := model.ColumnMap{model.FieldName: 0, model.FieldEmail: 1, model.FieldPhone: 2}
	c := Extract([]model.Cell{"Ali", "not-an-email", "12345"}, cols, 1, NewTracker())

	assert.Equal(t, model.StatusWarning, c.Status())
	assert.Equal(t, []string{model.IssueBadEmail, model.IssueBadPhone}, c.Issues)
}

func TestExtract_IssueOrder(t *testing.T) {
	cols := model.ColumnMap{model.FieldName: 0, model.FieldEmail: 1}
	tr := NewTracker()
	tr.Observe("dup@x.com", "")

	c := Extract([]model.Cell{"", "dup@x.com"}, cols, 2, tr)
	assert.Equal(t, []string{model.IssueDuplicate, model.IssueMissingName}, c.Issues)
	assert.Equal(t, model.StatusError, c.Status())
}

func TestExtract_OptionalFields(t *testing.T) {
	cols := model.ColumnMap{
		model.FieldName:    0,
		model.FieldEmail:   1,
		model.FieldCompany: 2,
	}
	c := Extract([]model.Cell{"Ali", "ali@x.com", "  Acme  Inc "}, cols, 1, NewTracker())

	require.NotNil(t, c.Company)
	assert.Equal(t, "Acme Inc", *c.Company)
	// Unmapped optional columns stay nil, mapped-but-blank would be "".
	assert.Nil(t, c.Address)
	assert.Nil(t, c.Notes)
}

func TestExtract_MappedBlankOptionalIsEmptyString(t *testing.T) {
	cols := model.ColumnMap{model.FieldName: 0, model.FieldEmail: 1, model.FieldNotes: 2}
	c := Extract([]model.Cell{"Ali", "ali@x.com", "  "}, cols, 1, NewTracker())

	require.NotNil(t, c.Notes)
	assert.Equal(t, "", *c.Notes)
}

func TestExtract_NumericPhoneCell(t *testing.T) {
	// Workbooks often type phone columns as numeric.
	cols := model.ColumnMap{model.FieldName: 0, model.FieldPhone: 1}
	c := Extract([]model.Cell{"Ali", float64(512345678)}, cols, 1, NewTracker())
	assert.Equal(t, "+966512345678", c.Phone)
	assert.Empty(t, c.Issues)
}

// Package mapping infers which source columns hold which contact fields by
// matching header names against a bilingual keyword table.
package mapping

import (
	"strings"

	"github.com/datapurity/purity-cli/internal/model"
)

// Rule binds one semantic field to the header keywords that select it.
type Rule struct {
	Field    model.Field `yaml:"field"`
	Keywords []string    `yaml:"keywords"`
}

// Table is an ordered list of rules. Order matters twice: for a single
// header the first matching rule wins, and across headers the first header
// that claims a field keeps it.
type Table struct {
	rules []Rule
}

// defaultRules is the built-in Arabic/English keyword table. Keywords are
// matched by substring containment after normalization, which deliberately
// favors recall over precision: "Email Address" normalizes to "emailaddress"
// and still contains "email".
var defaultRules = []Rule{
	{Field: model.FieldName, Keywords: []string{"name", "اسم", "الاسم", "full name"}},
	{Field: model.FieldEmail, Keywords: []string{"email", "بريد", "إيميل", "e-mail", "بريد إلكتروني"}},
	{Field: model.FieldPhone, Keywords: []string{"phone", "tel", "mobile", "هاتف", "جوال", "رقم"}},
	{Field: model.FieldCompany, Keywords: []string{"company", "شركة", "organization", "منظمة"}},
	{Field: model.FieldAddress, Keywords: []string{"address", "عنوان", "location", "موقع"}},
	{Field: model.FieldNotes, Keywords: []string{"notes", "ملاحظات", "note", "comment"}},
}

// Default returns the built-in table.
func Default() *Table {
	return &Table{rules: defaultRules}
}

// NewTable builds a table from explicit rules.
func NewTable(rules []Rule) *Table {
	return &Table{rules: rules}
}

// Extend returns a new table with extra rules appended after the existing
// ones, so built-in keywords keep precedence over locale additions.
func (t *Table) Extend(rules []Rule) *Table {
	merged := make([]Rule, 0, len(t.rules)+len(rules))
	merged = append(merged, t.rules...)
	merged = append(merged, rules...)
	return &Table{rules: merged}
}

// normalizeHeader lowercases and strips whitespace, underscores, and hyphens.
func normalizeHeader(h string) string {
	h = strings.ToLower(h)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '_', '-':
			return -1
		}
		return r
	}, h)
}

// Map assigns headers to fields. It scans headers left to right; for each
// header the first rule whose keyword is contained in the normalized header
// wins, and a field claimed by an earlier header is never overwritten.
func (t *Table) Map(headers []string) model.ColumnMap {
	out := make(model.ColumnMap)
	for idx, header := range headers {
		norm := normalizeHeader(header)
		if norm == "" {
			continue
		}
		for _, rule := range t.rules {
			if !matches(norm, rule.Keywords) {
				continue
			}
			// First match wins for this header; a field claimed by an
			// earlier header stays claimed.
			if _, taken := out[rule.Field]; !taken {
				out[rule.Field] = idx
			}
			break
		}
	}
	return out
}

func matches(normHeader string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(normHeader, normalizeHeader(kw)) {
			return true
		}
	}
	return false
}

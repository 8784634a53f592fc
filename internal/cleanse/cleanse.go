// Package cleanse normalizes contact fields and flags data-quality issues.
// Problems are never returned as errors: every finding lands on the contact
// as an issue, and the run always completes.
package cleanse

import (
	"regexp"
	"strings"

	"github.com/datapurity/purity-cli/internal/model"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Text trims and collapses internal whitespace runs to a single space.
func Text(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Email lowercases and trims. No other transformation: anything more
// aggressive risks destroying a deliverable address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone strips everything except digits and a leading "+", then applies the
// Saudi rewrite: "05…" becomes "+966" plus the remainder after the leading
// zero, and a bare 9-digit "5…" number gains the "+966" prefix. Any other
// shape passes through unchanged, so cleaning is idempotent.
func Phone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	p := b.String()

	switch {
	case strings.HasPrefix(p, "05"):
		return "+966" + p[1:]
	case len(p) == 9 && strings.HasPrefix(p, "5"):
		return "+966" + p
	default:
		return p
	}
}

var (
	// One non-space/non-@ run on each side of "@", with a dot in the domain.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Saudi mobile after the rewrite, or a generic international number.
	saudiPhonePattern = regexp.MustCompile(`^\+966\d{9}$`)
	intlPhonePattern  = regexp.MustCompile(`^\+\d{10,15}$`)
)

// ValidEmail reports whether a non-empty cleaned email matches
// local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether a non-empty cleaned phone is a Saudi mobile or
// a plausible international number.
func ValidPhone(phone string) bool {
	return saudiPhonePattern.MatchString(phone) || intlPhonePattern.MatchString(phone)
}

// Tracker detects cross-row duplicates within one processing run. The first
// occurrence of an email or phone is never flagged; later occurrences are.
type Tracker struct {
	emails map[string]bool
	phones map[string]bool
}

// NewTracker returns an empty duplicate tracker.
func NewTracker() *Tracker {
	return &Tracker{
		emails: make(map[string]bool),
		phones: make(map[string]bool),
	}
}

// Observe records the contact's email and phone and reports whether either
// non-empty value was already seen.
func (t *Tracker) Observe(email, phone string) bool {
	dup := (email != "" && t.emails[email]) || (phone != "" && t.phones[phone])
	if email != "" {
		t.emails[email] = true
	}
	if phone != "" {
		t.phones[phone] = true
	}
	return dup
}

// Extract builds a contact from one matrix row. Validation appends issues in
// detection order: duplicate, missing name, missing contact method, invalid
// email, invalid phone. Multiple issues can fire for the same row.
func Extract(row []model.Cell, cols model.ColumnMap, id int, tracker *Tracker) model.Contact {
	name, _ := cols.Lookup(row, model.FieldName)
	email, _ := cols.Lookup(row, model.FieldEmail)
	phone, _ := cols.Lookup(row, model.FieldPhone)

	c := model.Contact{
		ID:    id,
		Name:  Text(name),
		Email: Email(email),
		Phone: Phone(phone),
	}

	// Optional fields stay nil when the column was never mapped.
	if v, ok := cols.Lookup(row, model.FieldCompany); ok {
		c.Company = ptr(Text(v))
	}
	if v, ok := cols.Lookup(row, model.FieldAddress); ok {
		c.Address = ptr(Text(v))
	}
	if v, ok := cols.Lookup(row, model.FieldNotes); ok {
		c.Notes = ptr(Text(v))
	}

	if tracker.Observe(c.Email, c.Phone) {
		c.AddIssue(model.IssueDuplicate)
	}
	if c.Name == "" {
		c.AddIssue(model.IssueMissingName)
	}
	if c.Email == "" && c.Phone == "" {
		c.AddIssue(model.IssueMissingReach)
	}
	if c.Email != "" && !ValidEmail(c.Email) {
		c.AddIssue(model.IssueBadEmail)
	}
	if c.Phone != "" && !ValidPhone(c.Phone) {
		c.AddIssue(model.IssueBadPhone)
	}

	return c
}

func ptr(s string) *string { return &s }

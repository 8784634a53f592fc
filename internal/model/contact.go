// Package model defines the domain types shared across the cleaning pipeline.
package model

import "encoding/json"

// Status is the derived quality state of a cleaned contact.
type Status string

const (
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Arabic issue reasons, appended in detection order.
const (
	IssueDuplicate    = "مكرر"
	IssueMissingName  = "الاسم مفقود"
	IssueMissingReach = "البريد الإلكتروني أو الهاتف مفقود"
	IssueBadEmail     = "البريد الإلكتروني غير صالح"
	IssueBadPhone     = "رقم الهاتف غير صالح"
)

// missingIssues are the reasons that escalate a contact to StatusError.
// Everything else (format problems, duplicates) only warrants StatusWarning.
var missingIssues = map[string]bool{
	IssueMissingName:  true,
	IssueMissingReach: true,
}

// ArabicStatus translates a Status for export headers and cells.
func ArabicStatus(s Status) string {
	switch s {
	case StatusValid:
		return "صحيح"
	case StatusWarning:
		return "تحذير"
	case StatusError:
		return "خطأ"
	default:
		return string(s)
	}
}

// Contact is one validated, normalized output record.
//
// Name, Email, and Phone are required-intent fields: they default to "" when
// the source column is absent or the cell is blank. Company, Address, and
// Notes are optional and stay nil when the column was never mapped, which is
// distinct from a mapped-but-blank cell (pointer to "").
type Contact struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Company *string  `json:"company,omitempty"`
	Address *string  `json:"address,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
	Issues  []string `json:"issues"`
}

// MarshalJSON includes the derived status so API consumers never see a
// contact without one, and renders nil Issues as an empty list.
func (c Contact) MarshalJSON() ([]byte, error) {
	type alias Contact
	out := alias(c)
	if out.Issues == nil {
		out.Issues = []string{}
	}
	return json.Marshal(struct {
		alias
		Status Status `json:"status"`
	}{out, c.Status()})
}

// Status derives the quality state from Issues. It is recomputed on every
// call so Issues and the reported status can never drift apart.
func (c *Contact) Status() Status {
	if len(c.Issues) == 0 {
		return StatusValid
	}
	for _, issue := range c.Issues {
		if missingIssues[issue] {
			return StatusError
		}
	}
	return StatusWarning
}

// AddIssue appends a reason, preserving detection order.
func (c *Contact) AddIssue(reason string) {
	c.Issues = append(c.Issues, reason)
}

// HasIssue reports whether the given reason was recorded.
func (c *Contact) HasIssue(reason string) bool {
	for _, issue := range c.Issues {
		if issue == reason {
			return true
		}
	}
	return false
}

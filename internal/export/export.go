// Package export serializes cleaned contacts back to XLSX or CSV with
// Arabic column labels.
package export

import "github.com/datapurity/purity-cli/internal/model"

// Arabic header row shared by both formats, in the fixed export order:
// name, email, phone, company, address, notes, status, issues.
var headers = []string{
	"الاسم",
	"البريد الإلكتروني",
	"الهاتف",
	"الشركة",
	"العنوان",
	"ملاحظات",
	"الحالة",
	"المشاكل",
}

// colWidths are fixed per-column display widths for the XLSX sheet, matched
// to expected content length.
var colWidths = []float64{20, 28, 18, 22, 30, 24, 10, 40}

// sheetName labels the single exported worksheet.
const sheetName = "البيانات المنظفة"

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// recordCells renders one contact in export column order. Issues are joined
// by the caller because the separator differs per format.
func recordCells(c *model.Contact) []string {
	return []string{
		c.Name,
		c.Email,
		c.Phone,
		optional(c.Company),
		optional(c.Address),
		optional(c.Notes),
		model.ArabicStatus(c.Status()),
	}
}

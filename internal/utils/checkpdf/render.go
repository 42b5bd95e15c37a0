// Package checkpdf renders the printable single-page check document:
// header, payee line, amount, memo, signature line, and a detachable stub.
package checkpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
)

const (
	pageWidth  = 8.5 // inches, US Letter
	leftMargin = 1.0
)

// Render produces the PDF bytes for a check.
func Render(check *domain.CheckDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(leftMargin, 1.0, leftMargin)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(leftMargin, 1.0, "CHECK")
	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, pageWidth-leftMargin, 1.0, fmt.Sprintf("Check #: %s", check.CheckNumber))
	textRight(pdf, pageWidth-leftMargin, 1.2, fmt.Sprintf("Date: %s", check.IssueDate.Format("01/02/2006")))

	// Payee
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(leftMargin, 1.8, fmt.Sprintf("Pay to the order of: %s", check.VendorName))
	pdf.SetFont("Helvetica", "B", 14)
	textRight(pdf, pageWidth-leftMargin, 1.8, "$"+formatAmount(check.Amount))

	// Memo
	pdf.SetFont("Helvetica", "", 9)
	if check.Memo != "" {
		pdf.Text(leftMargin, 2.3, fmt.Sprintf("Memo: %s", check.Memo))
	}

	// Signature line
	pdf.Line(leftMargin, 2.8, pageWidth-leftMargin, 2.8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(leftMargin, 3.0, "Authorized Signature")

	// Stub
	pdf.Line(0.5, 3.5, pageWidth-0.5, 3.5)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(leftMargin, 4.0, "CHECK STUB - RETAIN FOR YOUR RECORDS")
	pdf.SetFont("Helvetica", "", 9)
	y := 4.4
	stubLines := []struct{ label, value string }{
		{"Check Number", check.CheckNumber},
		{"Date", check.IssueDate.Format("01/02/2006")},
		{"Vendor", check.VendorName},
		{"Amount", "$" + formatAmount(check.Amount)},
		{"Invoice", check.InvoiceNumber},
	}
	for _, line := range stubLines {
		pdf.Text(leftMargin, y, fmt.Sprintf("%s: %s", line.label, line.value))
		y += 0.2
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render check pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

// formatAmount renders the amount with two fraction digits and thousands
// separators, e.g. 1234.5 -> "1,234.50".
func formatAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}
	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ",") + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

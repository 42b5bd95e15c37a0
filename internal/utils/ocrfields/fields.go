// Package ocrfields parses best-guess invoice fields out of raw OCR text.
// This is deliberately a small collection of regular expressions with no
// confidence modeling; callers treat every result as a suggestion.
package ocrfields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// Fields holds the extracted values. Nil means not found.
type Fields struct {
	InvoiceNumber *string
	Amount        *string
	InvoiceDate   *string // normalized to YYYY-MM-DD when parseable
	RawText       string
}

var invoicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:invoice|inv|no|number|#)\s*[.:#]?\s*(\w[\w\-\/]+)`),
	regexp.MustCompile(`(?i)(INV[\-\s]?\d+)`),
	regexp.MustCompile(`NO\.\s*(\d+)`),
}

// Total-style lines take priority over bare dollar amounts.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:total|grand\s*total|amount\s*due|balance\s*due|net\s*amount)\s*[:\s]*\$?\s*([\d,]+\.?\d*)`),
}

var dollarAmountPattern = regexp.MustCompile(`\$\s*([\d,]+\.?\d*)`)

var datePatterns = []*regexp.Regexp{
	// 02 June, 2030 / June 02, 2030
	regexp.MustCompile(`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\w*[,.\s]+\d{4})`),
	regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\w*\s+\d{1,2}[,.\s]+\d{4})`),
	// MM/DD/YYYY or MM-DD-YYYY
	regexp.MustCompile(`(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`),
	// YYYY-MM-DD
	regexp.MustCompile(`(\d{4}[/\-]\d{1,2}[/\-]\d{1,2})`),
}

// Parse extracts invoice number, amount, and date from OCR text.
func Parse(text string) Fields {
	result := Fields{RawText: text}
	if strings.TrimSpace(text) == "" {
		return result
	}

	for _, pat := range invoicePatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			v := strings.TrimSpace(m[1])
			result.InvoiceNumber = &v
			break
		}
	}

	for _, pat := range amountPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			if v, ok := normalizeAmount(m[1]); ok {
				result.Amount = &v
			}
			break
		}
	}

	// Fallback: pick the largest dollar amount on the page.
	if result.Amount == nil {
		var best float64
		found := false
		for _, m := range dollarAmountPattern.FindAllStringSubmatch(text, -1) {
			raw := strings.ReplaceAll(m[1], ",", "")
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			if !found || f > best {
				best = f
				found = true
			}
		}
		if found {
			v := strconv.FormatFloat(best, 'f', -1, 64)
			result.Amount = &v
		}
	}

	for _, pat := range datePatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			raw := strings.TrimSpace(m[1])
			if t, err := dateparse.ParseAny(raw); err == nil {
				v := t.Format("2006-01-02")
				result.InvoiceDate = &v
			} else {
				result.InvoiceDate = &raw
			}
			break
		}
	}

	return result
}

func normalizeAmount(raw string) (string, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

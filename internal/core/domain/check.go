package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CheckStatus indicates the state of an issued check.
type CheckStatus string

const (
	CheckGenerated CheckStatus = "GENERATED"
	CheckPrinted   CheckStatus = "PRINTED"
	CheckVoid      CheckStatus = "VOID"
)

// Check represents a payable check issued against exactly one invoice.
type Check struct {
	CheckID     string          `json:"checkID"`     // Primary Key (UUID)
	CheckNumber string          `json:"checkNumber"` // Unique, CHK-%06d from a sequence
	VendorID    string          `json:"vendorID"`
	Amount      decimal.Decimal `json:"amount"` // Copied from the invoice at issuance
	Status      CheckStatus     `json:"status"`
	IssueDate   time.Time       `json:"issueDate"`
	Memo        string          `json:"memo,omitempty"`
	AuditFields
}

// FormatCheckNumber renders a sequence value as a zero-padded check number.
func FormatCheckNumber(seq int64) string {
	return fmt.Sprintf("CHK-%06d", seq)
}

// DefaultMemo is the memo used when the issuer supplies none.
func DefaultMemo(invoiceNumber string) string {
	return fmt.Sprintf("Payment for invoice %s", invoiceNumber)
}

// CanPrint reports whether the check may move to PRINTED.
func (c Check) CanPrint() bool {
	return c.Status == CheckGenerated
}

// CanVoid reports whether the check may move to VOID.
func (c Check) CanVoid() bool {
	return c.Status == CheckGenerated || c.Status == CheckPrinted
}

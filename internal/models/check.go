package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Check represents a row of the checks table.
type Check struct {
	CheckID     string          `db:"check_id"`
	CheckNumber string          `db:"check_number"`
	VendorID    string          `db:"vendor_id"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
	IssueDate   time.Time       `db:"issue_date"`
	Memo        string          `db:"memo"`
	AuditFields
}

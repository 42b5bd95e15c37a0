package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row of the invoices table.
type Invoice struct {
	InvoiceID          string          `db:"invoice_id"`
	InvoiceNumber      string          `db:"invoice_number"`
	StoreNumber        string          `db:"store_number"`
	VendorID           string          `db:"vendor_id"`
	Amount             decimal.Decimal `db:"amount"`
	InvoiceDate        time.Time       `db:"invoice_date"`
	Status             string          `db:"status"`
	CheckID            *string         `db:"check_id"`
	Notes              string          `db:"notes"`
	AttachmentFilename string          `db:"attachment_filename"`
	SourceType         string          `db:"source_type"`
	ImportedBy         string          `db:"imported_by"`
	ImportedAt         time.Time       `db:"imported_at"`
	AuditFields
}

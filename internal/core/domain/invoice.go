package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates where an invoice sits in the payment workflow.
type InvoiceStatus string

const (
	InvoicePending        InvoiceStatus = "PENDING"
	InvoiceApproved       InvoiceStatus = "APPROVED"
	InvoiceCheckGenerated InvoiceStatus = "CHECK_GENERATED"
	InvoicePrinted        InvoiceStatus = "PRINTED"
	InvoiceVoid           InvoiceStatus = "VOID"
)

// InvoiceSource tags how an invoice entered the ledger.
type InvoiceSource string

const (
	SourceCSV    InvoiceSource = "csv"
	SourceExcel  InvoiceSource = "excel"
	SourceManual InvoiceSource = "manual"
	SourceUpload InvoiceSource = "upload"
)

// Invoice is the workflow-bearing ledger entity.
// Invariant: CheckID is set if and only if status is CHECK_GENERATED or later.
type Invoice struct {
	InvoiceID          string          `json:"invoiceID"`     // Primary Key (UUID)
	InvoiceNumber      string          `json:"invoiceNumber"` // Unique, global (not scoped per vendor)
	StoreNumber        string          `json:"storeNumber"`
	VendorID           string          `json:"vendorID"`
	Amount             decimal.Decimal `json:"amount"` // Fixed-point, 2 fraction digits
	InvoiceDate        time.Time       `json:"invoiceDate"`
	Status             InvoiceStatus   `json:"status"`
	CheckID            *string         `json:"checkID,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	AttachmentFilename string          `json:"attachmentFilename,omitempty"`
	SourceType         InvoiceSource   `json:"sourceType"`
	ImportedBy         string          `json:"importedBy"` // UserID reference
	ImportedAt         time.Time       `json:"importedAt"`
	AuditFields
}

// CanApprove reports whether the approve transition is permitted.
func (i Invoice) CanApprove() bool {
	return i.Status == InvoicePending
}

// CanGenerateCheck reports whether a check may be issued for this invoice.
// Requires APPROVED status and no check already assigned.
func (i Invoice) CanGenerateCheck() bool {
	return i.Status == InvoiceApproved && i.CheckID == nil
}

// IsEditable reports whether financial fields (amount, invoice date, store
// number) may still change. Once approved, the numbers are what the check
// will be cut for.
func (i Invoice) IsEditable() bool {
	return i.Status == InvoicePending
}

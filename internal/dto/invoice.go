package dto

import (
	"time"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListInvoicesParams defines query filters for listing invoices.
type ListInvoicesParams struct {
	Status string `form:"status"`
	Store  string `form:"store"`
	Search string `form:"search"`
}

// CreateInvoiceRequest is the manual-entry form. Amount and date arrive as
// strings from the multipart form and are parsed by the service.
type CreateInvoiceRequest struct {
	InvoiceNumber string `form:"invoice_number" binding:"required"`
	StoreNumber   string `form:"store_number" binding:"required"`
	VendorID      string `form:"vendor_id" binding:"required"`
	Amount        string `form:"amount" binding:"required"`
	InvoiceDate   string `form:"invoice_date" binding:"required"`
	Notes         string `form:"notes"`
}

// UpdateInvoiceRequest defines the field-restricted patch. Status and check
// linkage are deliberately absent: only the transition operations move those.
// Store number, amount, and invoice date are accepted only while PENDING.
type UpdateInvoiceRequest struct {
	StoreNumber *string `json:"storeNumber"`
	Amount      *string `json:"amount"`
	InvoiceDate *string `json:"invoiceDate"`
	Notes       *string `json:"notes"`
}

// InvoiceResponse is the wire representation of a ledger entry.
type InvoiceResponse struct {
	InvoiceID          string          `json:"invoiceID"`
	InvoiceNumber      string          `json:"invoiceNumber"`
	StoreNumber        string          `json:"storeNumber"`
	VendorID           string          `json:"vendorID"`
	VendorName         string          `json:"vendorName"`
	Amount             decimal.Decimal `json:"amount"`
	InvoiceDate        string          `json:"invoiceDate"` // YYYY-MM-DD
	Status             string          `json:"status"`
	CheckID            *string         `json:"checkID,omitempty"`
	CheckNumber        *string         `json:"checkNumber,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	AttachmentFilename string          `json:"attachmentFilename,omitempty"`
	SourceType         string          `json:"sourceType"`
	ImportedByName     string          `json:"importedByName,omitempty"`
	ImportedAt         time.Time       `json:"importedAt"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ToInvoiceResponse converts joined invoice details to the wire representation.
func ToInvoiceResponse(d *domain.InvoiceDetails) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:          d.InvoiceID,
		InvoiceNumber:      d.InvoiceNumber,
		StoreNumber:        d.StoreNumber,
		VendorID:           d.VendorID,
		VendorName:         d.VendorName,
		Amount:             d.Amount,
		InvoiceDate:        d.InvoiceDate.Format("2006-01-02"),
		Status:             string(d.Status),
		CheckID:            d.CheckID,
		CheckNumber:        d.CheckNumber,
		Notes:              d.Notes,
		AttachmentFilename: d.AttachmentFilename,
		SourceType:         string(d.SourceType),
		ImportedByName:     d.ImportedByName,
		ImportedAt:         d.ImportedAt,
		CreatedAt:          d.CreatedAt,
	}
}

// ListInvoicesResponse wraps the invoice listing.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToListInvoicesResponse converts a slice of joined invoice details.
func ToListInvoicesResponse(details []domain.InvoiceDetails) ListInvoicesResponse {
	out := make([]InvoiceResponse, len(details))
	for i := range details {
		out[i] = ToInvoiceResponse(&details[i])
	}
	return ListInvoicesResponse{Invoices: out}
}

// ImportSummary reports the outcome of a bulk import. Row-level failures are
// non-fatal: the operation always completes with this summary.
type ImportSummary struct {
	TotalRows         int      `json:"total_rows"`
	Imported          int      `json:"imported"`
	SkippedDuplicates int      `json:"skipped_duplicates"`
	Errors            []string `json:"errors"`
}

package dto

import (
	"time"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateCheckRequest asks for a check against an approved invoice.
type GenerateCheckRequest struct {
	InvoiceID string `json:"invoiceID" binding:"required"`
	Memo      string `json:"memo"`
}

// CheckResponse is the wire representation of a check.
type CheckResponse struct {
	CheckID       string          `json:"checkID"`
	CheckNumber   string          `json:"checkNumber"`
	VendorID      string          `json:"vendorID"`
	VendorName    string          `json:"vendorName"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	IssueDate     string          `json:"issueDate"` // YYYY-MM-DD
	Memo          string          `json:"memo,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToCheckResponse converts joined check details to the wire representation.
func ToCheckResponse(d *domain.CheckDetails) CheckResponse {
	return CheckResponse{
		CheckID:       d.CheckID,
		CheckNumber:   d.CheckNumber,
		VendorID:      d.VendorID,
		VendorName:    d.VendorName,
		Amount:        d.Amount,
		Status:        string(d.Status),
		IssueDate:     d.IssueDate.Format("2006-01-02"),
		Memo:          d.Memo,
		InvoiceNumber: d.InvoiceNumber,
		CreatedAt:     d.CreatedAt,
	}
}

// ListChecksResponse wraps the check listing.
type ListChecksResponse struct {
	Checks []CheckResponse `json:"checks"`
}

// ToListChecksResponse converts a slice of joined check details.
func ToListChecksResponse(details []domain.CheckDetails) ListChecksResponse {
	out := make([]CheckResponse, len(details))
	for i := range details {
		out[i] = ToCheckResponse(&details[i])
	}
	return ListChecksResponse{Checks: out}
}

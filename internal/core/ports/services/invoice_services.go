package services

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations over the invoice ledger
type InvoiceReaderSvc interface {
	// GetInvoice retrieves one invoice with joined display fields.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.InvoiceDetails, error)

	// ListInvoices retrieves invoices matching the filter, newest first.
	ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.InvoiceDetails, error)

	// ResolveAttachment returns the filesystem path of a stored attachment.
	ResolveAttachment(filename string) (string, error)
}

// InvoiceWriterSvc defines creation and the field-restricted update
type InvoiceWriterSvc interface {
	// CreateManualInvoice records a manually entered invoice, optionally
	// with an attachment (source_type upload vs manual). The attachment is
	// staged before the ledger write and promoted only after it commits.
	CreateManualInvoice(ctx context.Context, req dto.CreateInvoiceRequest, attachment *dto.AttachmentUpload, creatorUserID string) (*domain.InvoiceDetails, error)

	// UpdateInvoice applies the restricted patch: notes always; store
	// number, amount, and invoice date only while PENDING.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.InvoiceDetails, error)
}

// InvoiceWorkflowSvc exposes the ledger's state transitions
type InvoiceWorkflowSvc interface {
	// ApproveInvoice transitions PENDING -> APPROVED. Not idempotent:
	// a second call fails with the invoice's current status.
	ApproveInvoice(ctx context.Context, invoiceID string, approverUserID string) (*domain.InvoiceDetails, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceWorkflowSvc
}

package repositories

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
)

// InvoiceListFilter narrows invoice listing. Zero values mean "no filter".
type InvoiceListFilter struct {
	Status string // exact status match
	Store  string // exact store_number match
	Search string // case-insensitive substring over invoice_number, vendor name, store_number
}

// InvoiceReader defines read operations for the invoice ledger
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByNumber retrieves an invoice by its globally unique number.
	FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)

	// FindInvoiceDetailsByID retrieves an invoice with joined display fields.
	FindInvoiceDetailsByID(ctx context.Context, invoiceID string) (*domain.InvoiceDetails, error)

	// ListInvoiceDetails retrieves invoices with joined display fields, newest first.
	ListInvoiceDetails(ctx context.Context, filter InvoiceListFilter) ([]domain.InvoiceDetails, error)
}

// InvoiceWriter defines write operations for the invoice ledger
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceFields updates the editable fields of an invoice
	// (store number, amount, invoice date, notes). Status and check
	// linkage are out of reach of this method: transitions own those.
	UpdateInvoiceFields(ctx context.Context, invoice domain.Invoice) error

	// ApproveInvoice transitions PENDING -> APPROVED with a conditional
	// update; returns apperrors.ErrInvalidState if the row was not PENDING.
	ApproveInvoice(ctx context.Context, invoiceID string, updatedBy string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

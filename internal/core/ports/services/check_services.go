package services

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
)

// CheckReaderSvc defines read operations for checks
type CheckReaderSvc interface {
	// GetCheck retrieves one check with joined display fields.
	GetCheck(ctx context.Context, checkID string) (*domain.CheckDetails, error)

	// ListChecks retrieves all checks, newest first.
	ListChecks(ctx context.Context) ([]domain.CheckDetails, error)
}

// CheckIssuerSvc creates checks from approved invoices
type CheckIssuerSvc interface {
	// GenerateCheck issues a check for an APPROVED, checkless invoice,
	// minting the next sequential check number. Memo defaults to
	// "Payment for invoice {invoice_number}" when empty.
	GenerateCheck(ctx context.Context, invoiceID string, memo string, issuerUserID string) (*domain.CheckDetails, error)
}

// CheckLifecycleSvc moves issued checks through PRINTED and VOID
type CheckLifecycleSvc interface {
	// PrintCheck transitions GENERATED -> PRINTED.
	PrintCheck(ctx context.Context, checkID string, updaterUserID string) (*domain.CheckDetails, error)

	// VoidCheck transitions GENERATED or PRINTED -> VOID.
	VoidCheck(ctx context.Context, checkID string, updaterUserID string) (*domain.CheckDetails, error)
}

// CheckRendererSvc produces the printable document
type CheckRendererSvc interface {
	// RenderCheckPDF returns the single-page PDF for a check.
	RenderCheckPDF(ctx context.Context, checkID string) ([]byte, *domain.CheckDetails, error)
}

// CheckSvcFacade combines all check-related service interfaces
type CheckSvcFacade interface {
	CheckReaderSvc
	CheckIssuerSvc
	CheckLifecycleSvc
	CheckRendererSvc
}

package repositories

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
)

// CheckReader defines read operations for checks
type CheckReader interface {
	// FindCheckByID retrieves a check by its ID.
	FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error)

	// FindCheckDetailsByID retrieves a check with payee and invoice display fields.
	FindCheckDetailsByID(ctx context.Context, checkID string) (*domain.CheckDetails, error)

	// ListCheckDetails retrieves all checks with display fields, newest first.
	ListCheckDetails(ctx context.Context) ([]domain.CheckDetails, error)
}

// CheckIssuer mints a check for an approved invoice. The implementation runs
// a single transaction that draws the next value from the check number
// sequence, inserts the check row, and flips the invoice to CHECK_GENERATED
// with a conditional update guarding the APPROVED-and-checkless precondition.
type CheckIssuer interface {
	// IssueCheck returns apperrors.ErrInvalidState if the invoice was
	// concurrently approved away or already issued.
	IssueCheck(ctx context.Context, invoice domain.Invoice, check domain.Check) (*domain.Check, error)
}

// CheckTransitioner moves issued checks through PRINTED and VOID, keeping the
// paying invoice's status in step within the same transaction.
type CheckTransitioner interface {
	TransitionCheck(ctx context.Context, checkID string, from []domain.CheckStatus, to domain.CheckStatus, invoiceStatus domain.InvoiceStatus, updatedBy string) error
}

// CheckRepositoryFacade combines all check-related repository interfaces
type CheckRepositoryFacade interface {
	CheckReader
	CheckIssuer
	CheckTransitioner
}

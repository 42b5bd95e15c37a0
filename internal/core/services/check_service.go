package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/middleware"
	"github.com/checkflowhq/checkflow_backend/internal/utils/checkpdf"
)

// checkService implements check issuance and lifecycle.
type checkService struct {
	checkRepo   portsrepo.CheckRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewCheckService creates a new check service.
func NewCheckService(checkRepo portsrepo.CheckRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.CheckSvcFacade {
	return &checkService{checkRepo: checkRepo, invoiceRepo: invoiceRepo}
}

// Ensure checkService implements the portssvc.CheckSvcFacade interface
var _ portssvc.CheckSvcFacade = (*checkService)(nil)

func (s *checkService) GetCheck(ctx context.Context, checkID string) (*domain.CheckDetails, error) {
	details, err := s.checkRepo.FindCheckDetailsByID(ctx, checkID)
	if err != nil {
		return nil, fmt.Errorf("failed to get check: %w", err)
	}
	return details, nil
}

func (s *checkService) ListChecks(ctx context.Context) ([]domain.CheckDetails, error) {
	details, err := s.checkRepo.ListCheckDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	return details, nil
}

// GenerateCheck issues a check for an APPROVED, checkless invoice. The
// issuance transaction re-checks that precondition, so a concurrent second
// call fails with ErrInvalidState instead of double paying.
func (s *checkService) GenerateCheck(ctx context.Context, invoiceID string, memo string, issuerUserID string) (*domain.CheckDetails, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	if !invoice.CanGenerateCheck() {
		if invoice.CheckID != nil {
			return nil, fmt.Errorf("invoice already has a check: %w", apperrors.ErrInvalidState)
		}
		return nil, fmt.Errorf("invoice is %s, not APPROVED: %w", invoice.Status, apperrors.ErrInvalidState)
	}

	if memo == "" {
		memo = domain.DefaultMemo(invoice.InvoiceNumber)
	}

	now := time.Now()
	check := domain.Check{
		CheckID:   uuid.NewString(),
		VendorID:  invoice.VendorID,
		Amount:    invoice.Amount, // face value frozen at issuance
		Status:    domain.CheckGenerated,
		IssueDate: now,
		Memo:      memo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     issuerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: issuerUserID,
		},
	}

	issued, err := s.checkRepo.IssueCheck(ctx, *invoice, check)
	if err != nil {
		return nil, fmt.Errorf("failed to issue check: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Check issued",
		slog.String("check_id", issued.CheckID),
		slog.String("check_number", issued.CheckNumber),
		slog.String("invoice_id", invoiceID),
	)
	return s.checkRepo.FindCheckDetailsByID(ctx, issued.CheckID)
}

// PrintCheck transitions GENERATED -> PRINTED; the paying invoice follows.
func (s *checkService) PrintCheck(ctx context.Context, checkID string, updaterUserID string) (*domain.CheckDetails, error) {
	err := s.checkRepo.TransitionCheck(ctx, checkID,
		[]domain.CheckStatus{domain.CheckGenerated},
		domain.CheckPrinted, domain.InvoicePrinted, updaterUserID)
	if err != nil {
		return nil, s.classifyTransitionErr(ctx, checkID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Check printed", slog.String("check_id", checkID))
	return s.checkRepo.FindCheckDetailsByID(ctx, checkID)
}

// VoidCheck transitions GENERATED or PRINTED -> VOID; the paying invoice follows.
func (s *checkService) VoidCheck(ctx context.Context, checkID string, updaterUserID string) (*domain.CheckDetails, error) {
	err := s.checkRepo.TransitionCheck(ctx, checkID,
		[]domain.CheckStatus{domain.CheckGenerated, domain.CheckPrinted},
		domain.CheckVoid, domain.InvoiceVoid, updaterUserID)
	if err != nil {
		return nil, s.classifyTransitionErr(ctx, checkID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Check voided", slog.String("check_id", checkID))
	return s.checkRepo.FindCheckDetailsByID(ctx, checkID)
}

// classifyTransitionErr distinguishes a missing check from one in the wrong
// state: the conditional update alone cannot tell the two apart.
func (s *checkService) classifyTransitionErr(ctx context.Context, checkID string, err error) error {
	if _, findErr := s.checkRepo.FindCheckByID(ctx, checkID); findErr != nil {
		return fmt.Errorf("failed to find check %s: %w", checkID, findErr)
	}
	return err
}

// RenderCheckPDF produces the printable single-page document for a check.
func (s *checkService) RenderCheckPDF(ctx context.Context, checkID string) ([]byte, *domain.CheckDetails, error) {
	details, err := s.checkRepo.FindCheckDetailsByID(ctx, checkID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find check %s: %w", checkID, err)
	}

	pdf, err := checkpdf.Render(details)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render check PDF: %w", err)
	}
	return pdf, details, nil
}

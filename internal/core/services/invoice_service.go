package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
	"github.com/checkflowhq/checkflow_backend/internal/middleware"
)

// allowedAttachmentExts are the upload types the ledger accepts.
var allowedAttachmentExts = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".tiff": true,
	".bmp":  true,
}

// invoiceService implements the invoice ledger operations.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
	attachments portsrepo.AttachmentStore
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade, attachments portsrepo.AttachmentStore) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		vendorRepo:  vendorRepo,
		attachments: attachments,
	}
}

// Ensure invoiceService implements the portssvc.InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.InvoiceDetails, error) {
	details, err := s.invoiceRepo.FindInvoiceDetailsByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return details, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.InvoiceDetails, error) {
	details, err := s.invoiceRepo.ListInvoiceDetails(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return details, nil
}

func (s *invoiceService) ResolveAttachment(filename string) (string, error) {
	return s.attachments.Resolve(filename)
}

// parseInvoiceDate accepts any common date format, matching the importer.
func parseInvoiceDate(raw string) (time.Time, error) {
	parsed, err := dateparse.ParseAny(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid invoice date %q: %w", raw, apperrors.ErrValidation)
	}
	return parsed, nil
}

// parseAmount parses a positive money amount with at most two fraction digits.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	return amount.Round(2), nil
}

// CreateManualInvoice records a manually entered invoice. When an attachment
// is supplied it is staged first, the ledger row commits referencing the
// stored name, and only then is the file promoted to the served area; a
// failed commit discards the staged file.
func (s *invoiceService) CreateManualInvoice(ctx context.Context, req dto.CreateInvoiceRequest, attachment *dto.AttachmentUpload, creatorUserID string) (*domain.InvoiceDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	invoiceDate, err := parseInvoiceDate(req.InvoiceDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID); err != nil {
		return nil, fmt.Errorf("vendor %s: %w", req.VendorID, err)
	}

	source := domain.SourceManual
	storedFilename := ""
	if attachment != nil {
		ext := strings.ToLower(filepath.Ext(attachment.Filename))
		if !allowedAttachmentExts[ext] {
			return nil, fmt.Errorf("unsupported attachment type %q: %w", ext, apperrors.ErrValidation)
		}
		storedFilename, err = s.attachments.Stage(ctx, ext, attachment.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		source = domain.SourceUpload
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:          uuid.NewString(),
		InvoiceNumber:      strings.TrimSpace(req.InvoiceNumber),
		StoreNumber:        strings.TrimSpace(req.StoreNumber),
		VendorID:           req.VendorID,
		Amount:             amount,
		InvoiceDate:        invoiceDate,
		Status:             domain.InvoicePending,
		Notes:              req.Notes,
		AttachmentFilename: storedFilename,
		SourceType:         source,
		ImportedBy:         creatorUserID,
		ImportedAt:         now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if storedFilename != "" {
			if discardErr := s.attachments.Discard(ctx, storedFilename); discardErr != nil {
				logger.Error("Failed to discard staged attachment", slog.String("filename", storedFilename), slog.String("error", discardErr.Error()))
			}
		}
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	if storedFilename != "" {
		if err := s.attachments.Promote(ctx, storedFilename); err != nil {
			// The ledger row is committed; log and continue rather than
			// undo a durable write over a file move.
			logger.Error("Failed to promote attachment", slog.String("filename", storedFilename), slog.String("error", err.Error()))
		}
	}

	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	return s.invoiceRepo.FindInvoiceDetailsByID(ctx, invoice.InvoiceID)
}

// UpdateInvoice applies the field-restricted patch: notes are always
// editable; store number, amount, and invoice date only while PENDING.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.InvoiceDetails, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	wantsRestricted := req.StoreNumber != nil || req.Amount != nil || req.InvoiceDate != nil
	if wantsRestricted && !invoice.IsEditable() {
		return nil, fmt.Errorf("invoice is %s; only notes may change: %w", invoice.Status, apperrors.ErrInvalidState)
	}

	if req.StoreNumber != nil {
		invoice.StoreNumber = strings.TrimSpace(*req.StoreNumber)
	}
	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		invoice.Amount = amount
	}
	if req.InvoiceDate != nil {
		invoiceDate, err := parseInvoiceDate(*req.InvoiceDate)
		if err != nil {
			return nil, err
		}
		invoice.InvoiceDate = invoiceDate
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = updaterUserID

	if err := s.invoiceRepo.UpdateInvoiceFields(ctx, *invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return s.invoiceRepo.FindInvoiceDetailsByID(ctx, invoiceID)
}

// ApproveInvoice transitions PENDING -> APPROVED. The conditional update at
// the store keeps two racing approvals from both succeeding.
func (s *invoiceService) ApproveInvoice(ctx context.Context, invoiceID string, approverUserID string) (*domain.InvoiceDetails, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	if !invoice.CanApprove() {
		return nil, fmt.Errorf("invoice is %s, not PENDING: %w", invoice.Status, apperrors.ErrInvalidState)
	}

	if err := s.invoiceRepo.ApproveInvoice(ctx, invoiceID, approverUserID); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Invoice approved", slog.String("invoice_id", invoiceID))
	return s.invoiceRepo.FindInvoiceDetailsByID(ctx, invoiceID)
}

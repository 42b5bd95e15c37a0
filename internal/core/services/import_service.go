package services

import (
	"context"
	"errors"
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
	"github.com/checkflowhq/checkflow_backend/internal/utils/tabular"
)

// requiredImportColumns must all be present in the upload's header row.
var requiredImportColumns = []string{"invoice_number", "store_number", "vendor_name", "amount"}

// importService turns uploaded tabular files into PENDING ledger entries.
type importService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
}

// NewImportService creates a new import service.
func NewImportService(invoiceRepo portsrepo.InvoiceRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade) portssvc.ImportSvcFacade {
	return &importService{invoiceRepo: invoiceRepo, vendorRepo: vendorRepo}
}

// Ensure importService implements the portssvc.ImportSvcFacade interface
var _ portssvc.ImportSvcFacade = (*importService)(nil)

// ImportFile parses a CSV or XLSX upload and imports its rows independently.
// Row failures are recorded in the summary and never abort the run; only a
// file-level problem (unsupported extension, missing header columns, unreadable
// file) fails the whole operation.
func (s *importService) ImportFile(ctx context.Context, filename string, content []byte, importerUserID string) (*dto.ImportSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var (
		file   *tabular.File
		source domain.InvoiceSource
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		file, err = tabular.ReadCSV(content)
		source = domain.SourceCSV
	case ".xlsx", ".xls":
		file, err = tabular.ReadXLSX(content)
		source = domain.SourceExcel
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .csv or .xlsx: %w", ext, apperrors.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, apperrors.ErrValidation)
	}

	if missing := file.MissingColumns(requiredImportColumns); len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s: %w", strings.Join(missing, ", "), apperrors.ErrValidation)
	}

	summary := &dto.ImportSummary{
		TotalRows: len(file.Rows),
		Errors:    []string{},
	}

	// The header is row 1 of the file, so data rows are numbered from 2.
	for i, row := range file.Rows {
		rowNum := i + 2
		if err := s.importRow(ctx, row, source, importerUserID, summary); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
		}
	}

	logger.Info("Import completed",
		slog.String("filename", filename),
		slog.Int("total_rows", summary.TotalRows),
		slog.Int("imported", summary.Imported),
		slog.Int("skipped_duplicates", summary.SkippedDuplicates),
		slog.Int("errors", len(summary.Errors)),
	)
	return summary, nil
}

// importRow imports one data row. It returns an error carrying only the
// message part; the caller prefixes the row number.
func (s *importService) importRow(ctx context.Context, row map[string]string, source domain.InvoiceSource, importerUserID string, summary *dto.ImportSummary) error {
	invoiceNumber := strings.TrimSpace(row["invoice_number"])
	storeNumber := strings.TrimSpace(row["store_number"])
	vendorName := strings.TrimSpace(row["vendor_name"])
	rawAmount := strings.TrimSpace(row["amount"])
	rawDate := strings.TrimSpace(row["invoice_date"])
	notes := strings.TrimSpace(row["notes"])

	if invoiceNumber == "" || storeNumber == "" || vendorName == "" || rawAmount == "" {
		return errors.New("missing required field(s)")
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || !amount.IsPositive() {
		return fmt.Errorf("invalid amount '%s'", rawAmount)
	}
	amount = amount.Round(2)

	invoiceDate := time.Now()
	if rawDate != "" {
		parsed, err := dateparse.ParseAny(rawDate)
		if err != nil {
			return fmt.Errorf("invalid date '%s'", rawDate)
		}
		invoiceDate = parsed
	}

	// A duplicate number is a skip, not an error.
	if _, err := s.invoiceRepo.FindInvoiceByNumber(ctx, invoiceNumber); err == nil {
		summary.SkippedDuplicates++
		return nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return errors.New("lookup failed")
	}

	vendor, err := s.findOrCreateVendor(ctx, vendorName, importerUserID)
	if err != nil {
		return errors.New("vendor lookup failed")
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: invoiceNumber,
		StoreNumber:   storeNumber,
		VendorID:      vendor.VendorID,
		Amount:        amount,
		InvoiceDate:   invoiceDate,
		Status:        domain.InvoicePending,
		Notes:         notes,
		SourceType:    source,
		ImportedBy:    importerUserID,
		ImportedAt:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     importerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: importerUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		// Another importer may have landed the same number between the
		// lookup and the insert.
		if errors.Is(err, apperrors.ErrDuplicate) {
			summary.SkippedDuplicates++
			return nil
		}
		return errors.New("insert failed")
	}

	summary.Imported++
	return nil
}

// findOrCreateVendor resolves a vendor by exact, case-sensitive name and
// lazily creates it on first sight.
func (s *importService) findOrCreateVendor(ctx context.Context, name string, creatorUserID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByName(ctx, name)
	if err == nil {
		return vendor, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	created := domain.Vendor{
		VendorID: uuid.NewString(),
		Name:     name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.vendorRepo.SaveVendor(ctx, created); err != nil {
		// Lost a race with another row or request creating the same name.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.vendorRepo.FindVendorByName(ctx, name)
		}
		return nil, err
	}
	return &created, nil
}

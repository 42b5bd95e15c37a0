package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	"github.com/checkflowhq/checkflow_backend/internal/models"
	"github.com/checkflowhq/checkflow_backend/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, store_number, vendor_id, amount, invoice_date, status, check_id, notes, attachment_filename, source_type, imported_by, imported_at, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.StoreNumber,
		&m.VendorID,
		&m.Amount,
		&m.InvoiceDate,
		&m.Status,
		&m.CheckID,
		&m.Notes,
		&m.AttachmentFilename,
		&m.SourceType,
		&m.ImportedBy,
		&m.ImportedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
        INSERT INTO invoices (invoice_id, invoice_number, store_number, vendor_id, amount, invoice_date, status, check_id, notes, attachment_filename, source_type, imported_by, imported_at, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNumber,
		m.StoreNumber,
		m.VendorID,
		m.Amount,
		m.InvoiceDate,
		m.Status,
		m.CheckID,
		m.Notes,
		m.AttachmentFilename,
		m.SourceType,
		m.ImportedBy,
		m.ImportedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", translateConstraintError(err))
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	d := mapping.ToDomainInvoice(*m)
	return &d, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_number = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by number: %w", err)
	}
	d := mapping.ToDomainInvoice(*m)
	return &d, nil
}

const invoiceDetailsSelect = `
    SELECT i.invoice_id, i.invoice_number, i.store_number, i.vendor_id, i.amount, i.invoice_date, i.status, i.check_id, i.notes, i.attachment_filename, i.source_type, i.imported_by, i.imported_at, i.created_at, i.created_by, i.last_updated_at, i.last_updated_by,
           v.name, c.check_number, COALESCE(u.full_name, '')
    FROM invoices i
    JOIN vendors v ON v.vendor_id = i.vendor_id
    LEFT JOIN checks c ON c.check_id = i.check_id
    LEFT JOIN users u ON u.user_id = i.imported_by
`

func scanInvoiceDetails(row pgx.Row) (*domain.InvoiceDetails, error) {
	var m models.Invoice
	var vendorName string
	var checkNumber *string
	var importedByName string
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.StoreNumber,
		&m.VendorID,
		&m.Amount,
		&m.InvoiceDate,
		&m.Status,
		&m.CheckID,
		&m.Notes,
		&m.AttachmentFilename,
		&m.SourceType,
		&m.ImportedBy,
		&m.ImportedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&vendorName,
		&checkNumber,
		&importedByName,
	)
	if err != nil {
		return nil, err
	}
	return &domain.InvoiceDetails{
		Invoice:        mapping.ToDomainInvoice(m),
		VendorName:     vendorName,
		CheckNumber:    checkNumber,
		ImportedByName: importedByName,
	}, nil
}

func (r *PgxInvoiceRepository) FindInvoiceDetailsByID(ctx context.Context, invoiceID string) (*domain.InvoiceDetails, error) {
	query := invoiceDetailsSelect + ` WHERE i.invoice_id = $1;`
	details, err := scanInvoiceDetails(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice details for %s: %w", invoiceID, err)
	}
	return details, nil
}

func (r *PgxInvoiceRepository) ListInvoiceDetails(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.InvoiceDetails, error) {
	query := invoiceDetailsSelect
	var conditions []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if filter.Store != "" {
		args = append(args, filter.Store)
		conditions = append(conditions, fmt.Sprintf("i.store_number = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(i.invoice_number ILIKE $%d OR v.name ILIKE $%d OR i.store_number ILIKE $%d)", n, n, n))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY i.created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	details := []domain.InvoiceDetails{}
	for rows.Next() {
		d, err := scanInvoiceDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		details = append(details, *d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	return details, nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceFields(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	// Status and check_id are intentionally not part of this statement.
	query := `
        UPDATE invoices
        SET store_number = $1, amount = $2, invoice_date = $3, notes = $4, last_updated_at = $5, last_updated_by = $6
        WHERE invoice_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.StoreNumber,
		m.Amount,
		m.InvoiceDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.InvoiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) ApproveInvoice(ctx context.Context, invoiceID string, updatedBy string) error {
	// Conditional update: the guard re-checks PENDING at the store so two
	// racing approvals cannot both succeed.
	query := `
        UPDATE invoices
        SET status = $1, last_updated_at = NOW(), last_updated_by = $2
        WHERE invoice_id = $3 AND status = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(domain.InvoiceApproved), updatedBy, invoiceID, string(domain.InvoicePending))
	if err != nil {
		return fmt.Errorf("failed to approve invoice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice is not pending: %w", apperrors.ErrInvalidState)
	}
	return nil
}

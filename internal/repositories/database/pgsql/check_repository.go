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

type PgxCheckRepository struct {
	BaseRepository
}

func newPgxCheckRepository(pool *pgxpool.Pool) portsrepo.CheckRepositoryFacade {
	return &PgxCheckRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxCheckRepository implements portsrepo.CheckRepositoryFacade
var _ portsrepo.CheckRepositoryFacade = (*PgxCheckRepository)(nil)

const checkColumns = `check_id, check_number, vendor_id, amount, status, issue_date, memo, created_at, created_by, last_updated_at, last_updated_by`

func scanCheck(row pgx.Row) (*models.Check, error) {
	var m models.Check
	err := row.Scan(
		&m.CheckID,
		&m.CheckNumber,
		&m.VendorID,
		&m.Amount,
		&m.Status,
		&m.IssueDate,
		&m.Memo,
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

func (r *PgxCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM checks WHERE check_id = $1;`
	m, err := scanCheck(r.Pool.QueryRow(ctx, query, checkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find check by ID %s: %w", checkID, err)
	}
	d := mapping.ToDomainCheck(*m)
	return &d, nil
}

const checkDetailsSelect = `
    SELECT c.check_id, c.check_number, c.vendor_id, c.amount, c.status, c.issue_date, c.memo, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by,
           v.name, COALESCE(i.invoice_number, '')
    FROM checks c
    JOIN vendors v ON v.vendor_id = c.vendor_id
    LEFT JOIN invoices i ON i.check_id = c.check_id
`

func scanCheckDetails(row pgx.Row) (*domain.CheckDetails, error) {
	var m models.Check
	var vendorName string
	var invoiceNumber string
	err := row.Scan(
		&m.CheckID,
		&m.CheckNumber,
		&m.VendorID,
		&m.Amount,
		&m.Status,
		&m.IssueDate,
		&m.Memo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&vendorName,
		&invoiceNumber,
	)
	if err != nil {
		return nil, err
	}
	return &domain.CheckDetails{
		Check:         mapping.ToDomainCheck(m),
		VendorName:    vendorName,
		InvoiceNumber: invoiceNumber,
	}, nil
}

func (r *PgxCheckRepository) FindCheckDetailsByID(ctx context.Context, checkID string) (*domain.CheckDetails, error) {
	query := checkDetailsSelect + ` WHERE c.check_id = $1;`
	details, err := scanCheckDetails(r.Pool.QueryRow(ctx, query, checkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find check details for %s: %w", checkID, err)
	}
	return details, nil
}

func (r *PgxCheckRepository) ListCheckDetails(ctx context.Context) ([]domain.CheckDetails, error) {
	query := checkDetailsSelect + ` ORDER BY c.created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}
	defer rows.Close()

	details := []domain.CheckDetails{}
	for rows.Next() {
		d, err := scanCheckDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check row: %w", err)
		}
		details = append(details, *d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating check rows: %w", rows.Err())
	}

	return details, nil
}

// IssueCheck issues a check against an approved invoice in one transaction:
// it draws the next check number from check_number_seq, inserts the check,
// then flips the invoice with a conditional update. If the invoice is no
// longer APPROVED or already carries a check, the transaction is rolled back
// and apperrors.ErrInvalidState is returned.
func (r *PgxCheckRepository) IssueCheck(ctx context.Context, invoice domain.Invoice, check domain.Check) (*domain.Check, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('check_number_seq');`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to draw check number: %w", err)
	}
	check.CheckNumber = domain.FormatCheckNumber(seq)

	m := mapping.ToModelCheck(check)
	insertQuery := `
        INSERT INTO checks (check_id, check_number, vendor_id, amount, status, issue_date, memo, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err = tx.Exec(ctx, insertQuery,
		m.CheckID,
		m.CheckNumber,
		m.VendorID,
		m.Amount,
		m.Status,
		m.IssueDate,
		m.Memo,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert check: %w", translateConstraintError(err))
	}

	updateQuery := `
        UPDATE invoices
        SET status = $1, check_id = $2, last_updated_at = NOW(), last_updated_by = $3
        WHERE invoice_id = $4 AND status = $5 AND check_id IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, updateQuery,
		string(domain.InvoiceCheckGenerated),
		check.CheckID,
		check.CreatedBy,
		invoice.InvoiceID,
		string(domain.InvoiceApproved),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to link check to invoice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("invoice is not approved or already has a check: %w", apperrors.ErrInvalidState)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &check, nil
}

// TransitionCheck moves a check between statuses with a conditional update
// and keeps the paying invoice's status in step inside the same transaction.
func (r *PgxCheckRepository) TransitionCheck(ctx context.Context, checkID string, from []domain.CheckStatus, to domain.CheckStatus, invoiceStatus domain.InvoiceStatus, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	fromStatuses := make([]string, len(from))
	for i, s := range from {
		fromStatuses[i] = string(s)
	}

	checkQuery := `
        UPDATE checks
        SET status = $1, last_updated_at = NOW(), last_updated_by = $2
        WHERE check_id = $3 AND status = ANY($4);
    `
	cmdTag, err := tx.Exec(ctx, checkQuery, string(to), updatedBy, checkID, fromStatuses)
	if err != nil {
		return fmt.Errorf("failed to transition check: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("check cannot move to %s: %w", to, apperrors.ErrInvalidState)
	}

	invoiceQuery := `
        UPDATE invoices
        SET status = $1, last_updated_at = NOW(), last_updated_by = $2
        WHERE check_id = $3;
    `
	if _, err := tx.Exec(ctx, invoiceQuery, string(invoiceStatus), updatedBy, checkID); err != nil {
		return fmt.Errorf("failed to update paying invoice: %w", err)
	}

	return r.Commit(ctx, tx)
}

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

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxVendorRepository implements portsrepo.VendorRepositoryFacade
var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorColumns = `vendor_id, name, address, city, state, zip_code, phone, email, created_at, created_by, last_updated_at, last_updated_by`

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	var m models.Vendor
	err := row.Scan(
		&m.VendorID,
		&m.Name,
		&m.Address,
		&m.City,
		&m.State,
		&m.ZipCode,
		&m.Phone,
		&m.Email,
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

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	query := `
        INSERT INTO vendors (vendor_id, name, address, city, state, zip_code, phone, email, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.VendorID,
		m.Name,
		m.Address,
		m.City,
		m.State,
		m.ZipCode,
		m.Phone,
		m.Email,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vendor: %w", translateConstraintError(err))
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`
	m, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID %s: %w", vendorID, err)
	}
	d := mapping.ToDomainVendor(*m)
	return &d, nil
}

// FindVendorByName matches the vendor name exactly, case-sensitive.
func (r *PgxVendorRepository) FindVendorByName(ctx context.Context, name string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE name = $1;`
	m, err := scanVendor(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by name: %w", err)
	}
	d := mapping.ToDomainVendor(*m)
	return &d, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	modelVendors := []models.Vendor{}
	for rows.Next() {
		m, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		modelVendors = append(modelVendors, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", rows.Err())
	}

	return mapping.ToDomainVendorSlice(modelVendors), nil
}

func (r *PgxVendorRepository) CountVendorReferences(ctx context.Context, vendorID string) (int, error) {
	query := `
        SELECT (SELECT COUNT(*) FROM invoices WHERE vendor_id = $1)
             + (SELECT COUNT(*) FROM checks WHERE vendor_id = $1);
    `
	var count int
	if err := r.Pool.QueryRow(ctx, query, vendorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count vendor references: %w", err)
	}
	return count, nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	query := `
        UPDATE vendors
        SET name = $1, address = $2, city = $3, state = $4, zip_code = $5, phone = $6, email = $7, last_updated_at = $8, last_updated_by = $9
        WHERE vendor_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Address,
		m.City,
		m.State,
		m.ZipCode,
		m.Phone,
		m.Email,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.VendorID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", translateConstraintError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("vendor not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		// ON DELETE RESTRICT backs the application-level reference check.
		return fmt.Errorf("failed to delete vendor: %w", translateConstraintError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("vendor not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

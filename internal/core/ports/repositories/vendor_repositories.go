package repositories

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
)

// VendorReader defines read operations for vendor data
type VendorReader interface {
	// FindVendorByID retrieves a vendor by its ID.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// FindVendorByName retrieves a vendor by exact, case-sensitive name.
	FindVendorByName(ctx context.Context, name string) (*domain.Vendor, error)

	// ListVendors retrieves all vendors ordered by name.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)

	// CountVendorReferences returns how many invoices and checks point at the vendor.
	CountVendorReferences(ctx context.Context, vendorID string) (int, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	// SaveVendor persists a new vendor.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error

	// UpdateVendor updates an existing vendor.
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error

	// DeleteVendor removes a vendor row.
	DeleteVendor(ctx context.Context, vendorID string) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}

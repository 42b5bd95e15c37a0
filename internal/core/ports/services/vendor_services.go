package services

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
)

// VendorReaderSvc defines read operations for vendors
type VendorReaderSvc interface {
	// GetVendorByID retrieves a vendor by ID.
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves all vendors ordered by name.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// VendorWriterSvc defines write operations for vendors
type VendorWriterSvc interface {
	// CreateVendor creates a vendor; duplicate names are rejected.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)

	// UpdateVendor patches vendor fields.
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error)

	// DeleteVendor removes a vendor that no invoice or check references.
	DeleteVendor(ctx context.Context, vendorID string) error
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}

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
	"github.com/checkflowhq/checkflow_backend/internal/dto"
	"github.com/checkflowhq/checkflow_backend/internal/middleware"
)

// vendorService implements the payee registry.
type vendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

// NewVendorService creates a new vendor service.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

// Ensure vendorService implements the portssvc.VendorSvcFacade interface
var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	now := time.Now()
	vendor := domain.Vendor{
		VendorID: uuid.NewString(),
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Phone:    req.Phone,
		Email:    req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Vendor created", slog.String("vendor_id", vendor.VendorID), slog.String("name", vendor.Name))
	return &vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor by ID: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	if vendors == nil {
		return []domain.Vendor{}, nil
	}
	return vendors, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.City != nil {
		vendor.City = *req.City
	}
	if req.State != nil {
		vendor.State = *req.State
	}
	if req.ZipCode != nil {
		vendor.ZipCode = *req.ZipCode
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = updaterUserID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return vendor, nil
}

// DeleteVendor removes a vendor that nothing references. The count check
// gives a clean error up front; the database RESTRICT constraint still backs
// it against races.
func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	refs, err := s.vendorRepo.CountVendorReferences(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("failed to count vendor references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("vendor is referenced by %d invoice(s) or check(s): %w", refs, apperrors.ErrConflict)
	}

	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Vendor deleted", slog.String("vendor_id", vendorID))
	return nil
}

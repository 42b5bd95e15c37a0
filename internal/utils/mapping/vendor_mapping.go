package mapping

import (
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	"github.com/checkflowhq/checkflow_backend/internal/models"
)

// ToModelVendor converts a domain Vendor to a model Vendor
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:    d.VendorID,
		Name:        d.Name,
		Address:     d.Address,
		City:        d.City,
		State:       d.State,
		ZipCode:     d.ZipCode,
		Phone:       d.Phone,
		Email:       d.Email,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:    m.VendorID,
		Name:        m.Name,
		Address:     m.Address,
		City:        m.City,
		State:       m.State,
		ZipCode:     m.ZipCode,
		Phone:       m.Phone,
		Email:       m.Email,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVendorSlice converts a slice of model Vendors to domain Vendors
func ToDomainVendorSlice(ms []models.Vendor) []domain.Vendor {
	ds := make([]domain.Vendor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendor(m)
	}
	return ds
}

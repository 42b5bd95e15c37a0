package dto

import (
	"time"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
)

// CreateVendorRequest defines the payload for creating a vendor.
type CreateVendorRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// UpdateVendorRequest defines the data allowed for updating a vendor.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateVendorRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipCode"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// VendorResponse is the wire representation of a vendor.
type VendorResponse struct {
	VendorID  string    `json:"vendorID"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zipCode,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToVendorResponse converts a domain Vendor to its wire representation.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:  v.VendorID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		State:     v.State,
		ZipCode:   v.ZipCode,
		Phone:     v.Phone,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
}

// ListVendorsResponse wraps the list of vendors.
type ListVendorsResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}

// ToListVendorsResponse converts a slice of domain vendors.
func ToListVendorsResponse(vendors []domain.Vendor) ListVendorsResponse {
	out := make([]VendorResponse, len(vendors))
	for i := range vendors {
		out[i] = ToVendorResponse(&vendors[i])
	}
	return ListVendorsResponse{Vendors: out}
}

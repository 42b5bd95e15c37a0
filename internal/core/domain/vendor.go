package domain

// Vendor represents a payee the business cuts checks for.
// Identity is the name: unique, case-sensitive, no normalization.
// Vendors are created explicitly by admins or lazily during bulk import.
type Vendor struct {
	VendorID string `json:"vendorID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	AuditFields
}

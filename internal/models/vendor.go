package models

// Vendor represents a row of the vendors table.
// Name carries a unique constraint (exact, case-sensitive match).
type Vendor struct {
	VendorID string `db:"vendor_id"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	City     string `db:"city"`
	State    string `db:"state"`
	ZipCode  string `db:"zip_code"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
	AuditFields
}

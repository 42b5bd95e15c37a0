package domain

// InvoiceDetails is an invoice joined with the display names callers expect:
// vendor name, check number (when issued), and the importing user's name.
type InvoiceDetails struct {
	Invoice
	VendorName     string  `json:"vendorName"`
	CheckNumber    *string `json:"checkNumber,omitempty"`
	ImportedByName string  `json:"importedByName,omitempty"`
}

// CheckDetails is a check joined with its payee name and the invoice it pays.
type CheckDetails struct {
	Check
	VendorName    string `json:"vendorName"`
	InvoiceNumber string `json:"invoiceNumber"`
}

package dto

// OCRFieldsResponse carries the best-guess fields extracted from an uploaded
// invoice image or PDF. Nil means the field could not be located.
type OCRFieldsResponse struct {
	InvoiceNumber *string `json:"invoice_number"`
	Amount        *string `json:"amount"`
	InvoiceDate   *string `json:"invoice_date"` // YYYY-MM-DD when normalizable
	RawText       string  `json:"raw_text"`
}

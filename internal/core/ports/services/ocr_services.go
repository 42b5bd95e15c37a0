package services

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/dto"
)

// OCRSvcFacade extracts best-guess invoice fields from uploaded documents.
type OCRSvcFacade interface {
	// ExtractInvoiceFields runs text extraction on the upload and parses
	// invoice number, amount, and date out of the recognized text.
	ExtractInvoiceFields(ctx context.Context, filename string, content []byte) (*dto.OCRFieldsResponse, error)
}

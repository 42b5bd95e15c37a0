package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
	"github.com/checkflowhq/checkflow_backend/internal/middleware"
	"github.com/checkflowhq/checkflow_backend/internal/utils/ocrfields"
)

// ocrService extracts best-guess invoice fields from uploaded documents.
// Every result is a suggestion for the entry form, never a committed value.
type ocrService struct {
	extractor portsrepo.TextExtractor
}

// NewOCRService creates a new OCR assist service.
func NewOCRService(extractor portsrepo.TextExtractor) portssvc.OCRSvcFacade {
	return &ocrService{extractor: extractor}
}

// Ensure ocrService implements the portssvc.OCRSvcFacade interface
var _ portssvc.OCRSvcFacade = (*ocrService)(nil)

func (s *ocrService) ExtractInvoiceFields(ctx context.Context, filename string, content []byte) (*dto.OCRFieldsResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedAttachmentExts[ext] {
		return nil, fmt.Errorf("unsupported file type %q: %w", ext, apperrors.ErrValidation)
	}

	text, err := s.extractor.ExtractText(ctx, filename, content)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Text extraction failed", slog.String("filename", filename), slog.String("error", err.Error()))
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	fields := ocrfields.Parse(text)
	return &dto.OCRFieldsResponse{
		InvoiceNumber: fields.InvoiceNumber,
		Amount:        fields.Amount,
		InvoiceDate:   fields.InvoiceDate,
		RawText:       fields.RawText,
	}, nil
}

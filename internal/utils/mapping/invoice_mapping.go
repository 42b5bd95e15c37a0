package mapping

import (
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	"github.com/checkflowhq/checkflow_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:          d.InvoiceID,
		InvoiceNumber:      d.InvoiceNumber,
		StoreNumber:        d.StoreNumber,
		VendorID:           d.VendorID,
		Amount:             d.Amount,
		InvoiceDate:        d.InvoiceDate,
		Status:             string(d.Status),
		CheckID:            d.CheckID,
		Notes:              d.Notes,
		AttachmentFilename: d.AttachmentFilename,
		SourceType:         string(d.SourceType),
		ImportedBy:         d.ImportedBy,
		ImportedAt:         d.ImportedAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:          m.InvoiceID,
		InvoiceNumber:      m.InvoiceNumber,
		StoreNumber:        m.StoreNumber,
		VendorID:           m.VendorID,
		Amount:             m.Amount,
		InvoiceDate:        m.InvoiceDate,
		Status:             domain.InvoiceStatus(m.Status),
		CheckID:            m.CheckID,
		Notes:              m.Notes,
		AttachmentFilename: m.AttachmentFilename,
		SourceType:         domain.InvoiceSource(m.SourceType),
		ImportedBy:         m.ImportedBy,
		ImportedAt:         m.ImportedAt,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

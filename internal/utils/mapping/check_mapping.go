package mapping

import (
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	"github.com/checkflowhq/checkflow_backend/internal/models"
)

// ToModelCheck converts a domain Check to a model Check
func ToModelCheck(d domain.Check) models.Check {
	return models.Check{
		CheckID:     d.CheckID,
		CheckNumber: d.CheckNumber,
		VendorID:    d.VendorID,
		Amount:      d.Amount,
		Status:      string(d.Status),
		IssueDate:   d.IssueDate,
		Memo:        d.Memo,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheck converts a model Check to a domain Check
func ToDomainCheck(m models.Check) domain.Check {
	return domain.Check{
		CheckID:     m.CheckID,
		CheckNumber: m.CheckNumber,
		VendorID:    m.VendorID,
		Amount:      m.Amount,
		Status:      domain.CheckStatus(m.Status),
		IssueDate:   m.IssueDate,
		Memo:        m.Memo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

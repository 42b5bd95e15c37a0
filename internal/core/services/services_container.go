package services

import (
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, attachments portsrepo.AttachmentStore, extractor portsrepo.TextExtractor, notifier portsrepo.SignupNotifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, notifier)
	container.Vendor = NewVendorService(repos.VendorRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.VendorRepo, attachments)
	container.Check = NewCheckService(repos.CheckRepo, repos.InvoiceRepo)
	container.Import = NewImportService(repos.InvoiceRepo, repos.VendorRepo)
	container.OCR = NewOCRService(extractor)

	return container
}

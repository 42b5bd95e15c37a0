package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is what the handlers are wired against.
type ServiceContainer struct {
	User    UserSvcFacade
	Vendor  VendorSvcFacade
	Invoice InvoiceSvcFacade
	Check   CheckSvcFacade
	Import  ImportSvcFacade
	OCR     OCRSvcFacade
}

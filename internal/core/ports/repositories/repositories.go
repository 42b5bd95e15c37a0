package repositories

// RepositoryProvider bundles the concrete repositories wired at startup.
type RepositoryProvider struct {
	UserRepo    UserRepositoryFacade
	VendorRepo  VendorRepositoryFacade
	InvoiceRepo InvoiceRepositoryFacade
	CheckRepo   CheckRepositoryFacade
}

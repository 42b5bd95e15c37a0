package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(pool),
		VendorRepo:  newPgxVendorRepository(pool),
		InvoiceRepo: newPgxInvoiceRepository(pool),
		CheckRepo:   newPgxCheckRepository(pool),
	}
}

package sqlite

import (
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the SQLite repositories over store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:  newInvoiceRepository(store.db),
		CustomerRepo: newCustomerRepository(store.db),
	}
}

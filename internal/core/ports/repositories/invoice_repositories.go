package repositories

import (
	"context"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
)

// InvoiceListFilter selects one page of the invoices listing.
type InvoiceListFilter struct {
	Query  string // case-insensitive substring over customer, amount, date, status
	Limit  int
	Offset int
}

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices matching the filter, newest first.
	ListInvoices(ctx context.Context, filter InvoiceListFilter) ([]domain.InvoiceListItem, error)

	// CountInvoices counts invoices matching the filter query.
	CountInvoices(ctx context.Context, query string) (int, error)
}

// InvoiceWriter defines write operations for invoice data.
// Each method is a single statement; none opens a transaction.
type InvoiceWriter interface {
	// InsertInvoice persists a new invoice and returns the ID storage assigned.
	InsertInvoice(ctx context.Context, invoice domain.Invoice) (string, error)

	// UpdateInvoice sets customer, amount and status of the matching row and
	// returns the number of rows affected.
	UpdateInvoice(ctx context.Context, invoiceID string, update domain.InvoiceUpdate) (int64, error)

	// DeleteInvoice removes the matching row and returns the number of rows affected.
	DeleteInvoice(ctx context.Context, invoiceID string) (int64, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

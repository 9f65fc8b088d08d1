package services

import (
	"context"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/dto"
)

// InvoiceActionSvc defines the form-backed invoice mutations.
// Validation failures come back inside the ActionResult; the error return is
// reserved for apperrors.PersistenceError and apperrors.ErrNotFound.
type InvoiceActionSvc interface {
	// CreateInvoice validates the form and inserts a new invoice.
	CreateInvoice(ctx context.Context, previousState domain.FormState, form dto.InvoiceFormRequest) (domain.ActionResult, error)

	// UpdateInvoice validates the form and updates customer, amount and status of invoiceID.
	UpdateInvoice(ctx context.Context, invoiceID string, previousState domain.FormState, form dto.InvoiceFormRequest) (domain.ActionResult, error)

	// DeleteInvoice hard-deletes invoiceID.
	DeleteInvoice(ctx context.Context, invoiceID string) (domain.ActionResult, error)
}

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves one page of the filtered invoices listing.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*domain.InvoicePage, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceActionSvc
	InvoiceReaderSvc
}

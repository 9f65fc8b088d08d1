package mapping

import (
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		Amount:     d.AmountCents,
		Status:     string(d.Status),
		Date:       d.Date,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		AmountCents: m.Amount,
		Status:      domain.InvoiceStatus(m.Status),
		Date:        m.Date,
	}
}

// ToDomainInvoiceListItem converts a joined invoice/customer row to a listing item
func ToDomainInvoiceListItem(m models.InvoiceWithCustomer) domain.InvoiceListItem {
	return domain.InvoiceListItem{
		Invoice:          ToDomainInvoice(m.Invoice),
		CustomerName:     m.Name,
		CustomerEmail:    m.Email,
		CustomerImageURL: m.ImageURL,
	}
}

// ToDomainInvoiceListItemSlice converts joined rows to listing items
func ToDomainInvoiceListItemSlice(ms []models.InvoiceWithCustomer) []domain.InvoiceListItem {
	ds := make([]domain.InvoiceListItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceListItem(m)
	}
	return ds
}

package dto

import (
	"bytes"
	"encoding/json"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/utils"
)

// InvoiceFormRequest is the raw invoice form. Values stay strings; the invoice
// schema owns coercion and validation, so there are no binding rules here.
type InvoiceFormRequest struct {
	CustomerID string     `form:"customerId" json:"customerId"`
	Amount     FormAmount `form:"amount" json:"amount"`
	Status     string     `form:"status" json:"status"`
}

// FormAmount is the amount exactly as submitted. JSON bodies may send it as a
// string or a number; either way the literal text is kept for the schema.
type FormAmount string

// UnmarshalJSON accepts a JSON string, number or null.
func (a *FormAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = FormAmount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = FormAmount(n.String())
	return nil
}

// ListInvoicesParams defines query parameters for the invoices listing.
type ListInvoicesParams struct {
	Query string `form:"query"`
	Page  int    `form:"page,default=1" binding:"min=1"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID              string               `json:"id"`
	CustomerID      string               `json:"customerId"`
	Name            string               `json:"name,omitempty"`
	Email           string               `json:"email,omitempty"`
	ImageURL        string               `json:"imageUrl,omitempty"`
	Amount          int64                `json:"amount"`      // cents
	AmountValue     string               `json:"amountValue"` // decimal units, as the edit form shows it
	AmountFormatted string               `json:"amountFormatted"`
	Status          domain.InvoiceStatus `json:"status"`
	Date            string               `json:"date"`
}

// ListInvoicesResponse wraps one page of the invoices listing.
type ListInvoicesResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Query      string            `json:"query"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:              inv.ID,
		CustomerID:      inv.CustomerID,
		Amount:          inv.AmountCents,
		AmountValue:     utils.CentsToAmount(inv.AmountCents).StringFixed(2),
		AmountFormatted: utils.FormatCents(inv.AmountCents),
		Status:          inv.Status,
		Date:            inv.Date,
	}
}

// ToInvoiceListItemResponse converts a listing item, customer fields included
func ToInvoiceListItemResponse(item *domain.InvoiceListItem) InvoiceResponse {
	res := ToInvoiceResponse(&item.Invoice)
	res.Name = item.CustomerName
	res.Email = item.CustomerEmail
	res.ImageURL = item.CustomerImageURL
	return res
}

// ToListInvoicesResponse converts a domain.InvoicePage to ListInvoicesResponse DTO
func ToListInvoicesResponse(page *domain.InvoicePage) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(page.Items))
	for i := range page.Items {
		res[i] = ToInvoiceListItemResponse(&page.Items[i])
	}
	return ListInvoicesResponse{
		Invoices:   res,
		Query:      page.Query,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
}

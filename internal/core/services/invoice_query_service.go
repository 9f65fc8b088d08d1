package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/apperrors"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/dto"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/utils/pagination"
	"github.com/google/uuid"
)

// InvoicesPerPage is the page size of the invoices listing.
const InvoicesPerPage = 6

// listingKey is the view cache key of one rendered listing page.
func listingKey(query string, page int) string {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	if query != "" {
		values.Set("query", query)
	}
	return domain.InvoicesListingPath + "?" + values.Encode()
}

// GetInvoiceByID retrieves the invoice the edit form is prefilled from.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if uuid.Validate(invoiceID) != nil {
		return nil, apperrors.ErrNotFound
	}

	var invoice *domain.Invoice
	err := s.timeStorage("select", func() error {
		var err error
		invoice, err = s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch invoice", slog.String("invoice_id", invoiceID))
		return nil, apperrors.NewPersistenceError("get", "Database Error: Failed to Fetch Invoice.", err)
	}
	return invoice, nil
}

// ListInvoices returns one page of invoices whose customer, amount, date or
// status contains the query. Pages are cached until an action invalidates the listing.
func (s *InvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*domain.InvoicePage, error) {
	query := strings.TrimSpace(params.Query)
	page := params.Page
	if page < 1 {
		page = 1
	}

	key := listingKey(query, page)
	var generation uint64
	if s.views != nil {
		generation = s.views.Generation(domain.InvoicesListingPath)
		if cached, ok := s.views.Get(key); ok {
			if invoicePage, ok := cached.(*domain.InvoicePage); ok {
				s.LogDebug(ctx, "Invoices listing served from cache", slog.String("key", key))
				return invoicePage, nil
			}
		}
	}

	var (
		total int
		items []domain.InvoiceListItem
	)
	err := s.timeStorage("count", func() error {
		var err error
		total, err = s.invoiceRepo.CountInvoices(ctx, query)
		return err
	})
	if err == nil {
		err = s.timeStorage("list", func() error {
			var err error
			items, err = s.invoiceRepo.ListInvoices(ctx, portsrepo.InvoiceListFilter{
				Query:  query,
				Limit:  InvoicesPerPage,
				Offset: pagination.Offset(page, InvoicesPerPage),
			})
			return err
		})
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("query", query), slog.Int("page", page))
		return nil, apperrors.NewPersistenceError("list", "Database Error: Failed to Fetch Invoices.", fmt.Errorf("list invoices: %w", err))
	}
	if items == nil {
		items = []domain.InvoiceListItem{}
	}

	invoicePage := &domain.InvoicePage{
		Items:      items,
		Query:      query,
		Page:       page,
		TotalPages: pagination.TotalPages(total, InvoicesPerPage),
	}
	if s.views != nil {
		s.views.Put(key, generation, invoicePage)
	}
	return invoicePage, nil
}

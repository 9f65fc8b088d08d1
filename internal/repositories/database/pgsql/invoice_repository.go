package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/apperrors"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/models"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceSearchPredicate = `
	customers.name ILIKE $1 OR
	customers.email ILIKE $1 OR
	invoices.amount::text ILIKE $1 OR
	invoices.date::text ILIKE $1 OR
	invoices.status ILIKE $1`

// InsertInvoice inserts a new invoice and returns the id Postgres generated for it.
func (r *PgxInvoiceRepository) InsertInvoice(ctx context.Context, invoice domain.Invoice) (string, error) {
	modelInv := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text;
	`

	var id string
	err := r.Pool.QueryRow(ctx, query,
		modelInv.CustomerID,
		modelInv.Amount,
		modelInv.Status,
		modelInv.Date,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert invoice for customer %s: %w", modelInv.CustomerID, err)
	}
	return id, nil
}

// UpdateInvoice sets customer, amount and status. id and date are never written.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, update domain.InvoiceUpdate) (int64, error) {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4;
	`

	tag, err := r.Pool.Exec(ctx, query, update.CustomerID, update.AmountCents, string(update.Status), invoiceID)
	if err != nil {
		return 0, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteInvoice hard-deletes an invoice.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1;`, invoiceID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	return tag.RowsAffected(), nil
}

// FindInvoiceByID retrieves a single invoice.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT id::text, customer_id::text, amount, status, date
		FROM invoices
		WHERE id = $1;
	`
	var modelInv models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&modelInv.ID,
		&modelInv.CustomerID,
		&modelInv.Amount,
		&modelInv.Status,
		&modelInv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	domainInv := mapping.ToDomainInvoice(modelInv)
	return &domainInv, nil
}

// ListInvoices retrieves one page of invoices joined with their customer, newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.InvoiceListItem, error) {
	query := `
		SELECT invoices.id::text, invoices.customer_id::text, invoices.amount, invoices.status, invoices.date,
			customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceSearchPredicate + `
		ORDER BY invoices.date DESC, invoices.id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, containsPattern(filter.Query), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceWithCustomer, error) {
		var inv models.InvoiceWithCustomer
		err := row.Scan(
			&inv.ID,
			&inv.CustomerID,
			&inv.Amount,
			&inv.Status,
			&inv.Date,
			&inv.Name,
			&inv.Email,
			&inv.ImageURL,
		)
		return inv, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}

	return mapping.ToDomainInvoiceListItemSlice(modelRows), nil
}

// CountInvoices counts the invoices matching the search term.
func (r *PgxInvoiceRepository) CountInvoices(ctx context.Context, query string) (int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceSearchPredicate + `;`

	var count int
	if err := r.Pool.QueryRow(ctx, countQuery, containsPattern(query)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/apperrors"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/models"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/utils/mapping"
	"github.com/google/uuid"
)

// InvoiceRepository implements portsrepo.InvoiceRepositoryFacade on SQLite.
type InvoiceRepository struct {
	db *sql.DB
}

func newInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

// SQLite LIKE is case-insensitive for ASCII, matching the ILIKE search on Postgres.
const invoiceSearchPredicate = `
	customers.name LIKE ? ESCAPE '\' OR
	customers.email LIKE ? ESCAPE '\' OR
	CAST(invoices.amount AS TEXT) LIKE ? ESCAPE '\' OR
	invoices.date LIKE ? ESCAPE '\' OR
	invoices.status LIKE ? ESCAPE '\'`

func searchArgs(query string) []any {
	pattern := containsPattern(query)
	return []any{pattern, pattern, pattern, pattern, pattern}
}

// InsertInvoice inserts a new invoice under a freshly generated id.
func (r *InvoiceRepository) InsertInvoice(ctx context.Context, invoice domain.Invoice) (string, error) {
	modelInv := mapping.ToModelInvoice(invoice)
	modelInv.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invoices (id, customer_id, amount, status, date) VALUES (?, ?, ?, ?, ?)`,
		modelInv.ID, modelInv.CustomerID, modelInv.Amount, modelInv.Status, modelInv.Date,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert invoice for customer %s: %w", modelInv.CustomerID, err)
	}
	return modelInv.ID, nil
}

// UpdateInvoice sets customer, amount and status. id and date are never written.
func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, update domain.InvoiceUpdate) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET customer_id = ?, amount = ?, status = ? WHERE id = ?`,
		update.CustomerID, update.AmountCents, string(update.Status), invoiceID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	return res.RowsAffected()
}

// DeleteInvoice hard-deletes an invoice.
func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, invoiceID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	return res.RowsAffected()
}

// FindInvoiceByID retrieves a single invoice.
func (r *InvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var modelInv models.Invoice
	err := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, amount, status, date FROM invoices WHERE id = ?`, invoiceID,
	).Scan(&modelInv.ID, &modelInv.CustomerID, &modelInv.Amount, &modelInv.Status, &modelInv.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	domainInv := mapping.ToDomainInvoice(modelInv)
	return &domainInv, nil
}

// ListInvoices retrieves one page of invoices joined with their customer, newest first.
func (r *InvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.InvoiceListItem, error) {
	query := `
		SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
			customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceSearchPredicate + `
		ORDER BY invoices.date DESC, invoices.id
		LIMIT ? OFFSET ?`

	args := append(searchArgs(filter.Query), filter.Limit, filter.Offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var modelRows []models.InvoiceWithCustomer
	for rows.Next() {
		var inv models.InvoiceWithCustomer
		if err := rows.Scan(
			&inv.ID,
			&inv.CustomerID,
			&inv.Amount,
			&inv.Status,
			&inv.Date,
			&inv.Name,
			&inv.Email,
			&inv.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		modelRows = append(modelRows, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}

	return mapping.ToDomainInvoiceListItemSlice(modelRows), nil
}

// CountInvoices counts the invoices matching the search term.
func (r *InvoiceRepository) CountInvoices(ctx context.Context, query string) (int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceSearchPredicate

	var count int
	if err := r.db.QueryRowContext(ctx, countQuery, searchArgs(query)...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

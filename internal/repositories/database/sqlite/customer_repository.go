package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/models"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/utils/mapping"
)

// CustomerRepository implements portsrepo.CustomerReader on SQLite.
type CustomerRepository struct {
	db *sql.DB
}

func newCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

var (
	_ portsrepo.CustomerReader = (*CustomerRepository)(nil)
	_ portsrepo.CustomerSeeder = (*CustomerRepository)(nil)
)

// ListCustomers retrieves all customers ordered by name.
func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, image_url FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var modelCustomers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		modelCustomers = append(modelCustomers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}

// InsertCustomer adds a customer unless its id already exists.
func (r *CustomerRepository) InsertCustomer(ctx context.Context, customer domain.Customer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (id, name, email, image_url) VALUES (?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`,
		customer.ID, customer.Name, customer.Email, customer.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer %s: %w", customer.ID, err)
	}
	return nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/models"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var (
	_ portsrepo.CustomerReader = (*PgxCustomerRepository)(nil)
	_ portsrepo.CustomerSeeder = (*PgxCustomerRepository)(nil)
)

// ListCustomers retrieves all customers ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id::text, name, email, image_url
		FROM customers
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	modelCustomers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}

	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}

// InsertCustomer adds a customer unless its id already exists.
func (r *PgxCustomerRepository) InsertCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.ImageURL); err != nil {
		return fmt.Errorf("failed to insert customer %s: %w", customer.ID, err)
	}
	return nil
}

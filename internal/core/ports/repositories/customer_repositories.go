package repositories

import (
	"context"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// ListCustomers retrieves all customers ordered by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerSeeder adds customers. Only development seeding writes customers.
type CustomerSeeder interface {
	// InsertCustomer adds a customer; an existing id is left untouched.
	InsertCustomer(ctx context.Context, customer domain.Customer) error
}

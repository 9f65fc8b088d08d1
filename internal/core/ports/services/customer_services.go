package services

import (
	"context"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// ListCustomers retrieves all customers ordered by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

package services

import (
	"context"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/apperrors"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
)

// CustomerService lists the customers an invoice can be issued to.
type CustomerService struct {
	BaseService
	customerRepo portsrepo.CustomerReader
}

func NewCustomerService(customerRepo portsrepo.CustomerReader) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, apperrors.NewPersistenceError("list_customers", "Database Error: Failed to Fetch Customers.", err)
	}
	// Return empty slice if no customers found, not nil
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

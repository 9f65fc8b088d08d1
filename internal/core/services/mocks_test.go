package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.InvoiceListItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceListItem), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoices(ctx context.Context, query string) (int, error) {
	args := m.Called(ctx, query)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) InsertInvoice(ctx context.Context, invoice domain.Invoice) (string, error) {
	args := m.Called(ctx, invoice)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, update domain.InvoiceUpdate) (int64, error) {
	args := m.Called(ctx, invoiceID, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) (int64, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Mock ViewCache ---
type MockViewCache struct {
	mock.Mock
}

func (m *MockViewCache) Invalidate(path string) {
	m.Called(path)
}

func (m *MockViewCache) Get(key string) (any, bool) {
	args := m.Called(key)
	return args.Get(0), args.Bool(1)
}

func (m *MockViewCache) Generation(path string) uint64 {
	args := m.Called(path)
	return args.Get(0).(uint64)
}

func (m *MockViewCache) Put(key string, generation uint64, view any) {
	m.Called(key, generation, view)
}

// --- Recording ActionRecorder ---
type recordedOutcome struct {
	action, outcome string
}

type fakeRecorder struct {
	mu         sync.Mutex
	outcomes   []recordedOutcome
	operations []string
}

func (r *fakeRecorder) RecordActionOutcome(action, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, recordedOutcome{action, outcome})
}

func (r *fakeRecorder) ObserveStorage(operation string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, operation)
}

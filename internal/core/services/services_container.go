package services

import (
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	portssvc "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, views ports.ViewCache, recorder ActionRecorder) *portssvc.ServiceContainer {
	options := []InvoiceServiceOption{WithViewCache(views)}
	if recorder != nil {
		options = append(options, WithActionRecorder(recorder))
	}

	return &portssvc.ServiceContainer{
		Invoice:  NewInvoiceService(repos.InvoiceRepo, options...),
		Customer: NewCustomerService(repos.CustomerRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoiceSvcFacade  = (*InvoiceService)(nil)
	_ portssvc.CustomerReaderSvc = (*CustomerService)(nil)
)

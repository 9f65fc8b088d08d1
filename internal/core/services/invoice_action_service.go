package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/apperrors"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/validation"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/dto"
	"github.com/google/uuid"
)

const (
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"

	outcomeNotFound         = "not_found"
	outcomePersistenceError = "persistence_error"
)

const (
	msgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	msgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	msgCreateDatabaseError = "Database Error: Failed to Create Invoice."
	msgUpdateDatabaseError = "Database Error: Failed to Update Invoice."
	msgDeleteDatabaseError = "Database Error: Failed to Delete Invoice."
)

// InvoiceService implements portssvc.InvoiceSvcFacade: the invoice form actions
// plus the reads that feed the listing and the edit form.
type InvoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	validator   *validation.InvoiceValidator
	views       ports.ViewCache
	now         func() time.Time
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*InvoiceService)

// WithViewCache sets the cache the listing is served from and invalidated in.
func WithViewCache(views ports.ViewCache) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.views = views
	}
}

// WithActionRecorder reports action outcomes and storage latency.
func WithActionRecorder(recorder ActionRecorder) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.Recorder = recorder
	}
}

// WithClock overrides the clock used to date new invoices.
func WithClock(now func() time.Time) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, options ...InvoiceServiceOption) *InvoiceService {
	svc := &InvoiceService{
		invoiceRepo: repo,
		validator:   validation.NewInvoiceValidator(),
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

func toRawInvoice(form dto.InvoiceFormRequest) validation.RawInvoice {
	return validation.RawInvoice{
		CustomerID: form.CustomerID,
		Amount:     string(form.Amount),
		Status:     form.Status,
	}
}

// CreateInvoice validates the form and inserts a new invoice dated today (UTC).
// previousState is accepted for form round-tripping and never read.
func (s *InvoiceService) CreateInvoice(ctx context.Context, _ domain.FormState, form dto.InvoiceFormRequest) (domain.ActionResult, error) {
	result := s.validator.Validate(toRawInvoice(form))
	if !result.Valid() {
		s.LogInfo(ctx, "Invoice create rejected by validation", slog.Int("invalid_fields", len(result.FieldErrors)))
		s.recordOutcome(actionCreate, string(domain.OutcomeValidationFailure))
		return domain.ValidationFailure(domain.FormState{
			Errors:  result.FieldErrors,
			Message: msgCreateMissingFields,
		}), nil
	}

	invoice := domain.Invoice{
		CustomerID:  result.Fields.CustomerID,
		AmountCents: result.Fields.AmountInCents(),
		Status:      result.Fields.Status,
		Date:        s.now().UTC().Format(domain.DateLayout),
	}

	var invoiceID string
	err := s.timeStorage("insert", func() error {
		var err error
		invoiceID, err = s.invoiceRepo.InsertInvoice(ctx, invoice)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to insert invoice", slog.String("customer_id", invoice.CustomerID))
		s.recordOutcome(actionCreate, outcomePersistenceError)
		return domain.ActionResult{}, apperrors.NewPersistenceError(actionCreate, msgCreateDatabaseError, err)
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoiceID), slog.Int64("amount", invoice.AmountCents))
	s.invalidateListing()
	s.recordOutcome(actionCreate, string(domain.OutcomeRedirect))
	return domain.Redirect(domain.InvoicesListingPath), nil
}

// UpdateInvoice validates the form and replaces customer, amount and status of
// invoiceID. A missing or malformed id is reported as apperrors.ErrNotFound.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, _ domain.FormState, form dto.InvoiceFormRequest) (domain.ActionResult, error) {
	result := s.validator.Validate(toRawInvoice(form))
	if !result.Valid() {
		s.LogInfo(ctx, "Invoice update rejected by validation",
			slog.String("invoice_id", invoiceID),
			slog.Int("invalid_fields", len(result.FieldErrors)))
		s.recordOutcome(actionUpdate, string(domain.OutcomeValidationFailure))
		return domain.ValidationFailure(domain.FormState{
			Errors:  result.FieldErrors,
			Message: msgUpdateMissingFields,
		}), nil
	}

	if uuid.Validate(invoiceID) != nil {
		s.LogDebug(ctx, "Invoice update for malformed id", slog.String("invoice_id", invoiceID))
		s.recordOutcome(actionUpdate, outcomeNotFound)
		return domain.ActionResult{}, apperrors.ErrNotFound
	}

	update := domain.InvoiceUpdate{
		CustomerID:  result.Fields.CustomerID,
		AmountCents: result.Fields.AmountInCents(),
		Status:      result.Fields.Status,
	}

	var affected int64
	err := s.timeStorage("update", func() error {
		var err error
		affected, err = s.invoiceRepo.UpdateInvoice(ctx, invoiceID, update)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		s.recordOutcome(actionUpdate, outcomePersistenceError)
		return domain.ActionResult{}, apperrors.NewPersistenceError(actionUpdate, msgUpdateDatabaseError, err)
	}
	if affected == 0 {
		s.LogInfo(ctx, "Invoice update matched no row", slog.String("invoice_id", invoiceID))
		s.recordOutcome(actionUpdate, outcomeNotFound)
		return domain.ActionResult{}, apperrors.ErrNotFound
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID))
	s.invalidateListing()
	s.recordOutcome(actionUpdate, string(domain.OutcomeRedirect))
	return domain.Redirect(domain.InvoicesListingPath), nil
}

// DeleteInvoice removes invoiceID. Deleting an absent invoice succeeds.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceID string) (domain.ActionResult, error) {
	if uuid.Validate(invoiceID) != nil {
		s.LogDebug(ctx, "Invoice delete for malformed id", slog.String("invoice_id", invoiceID))
		s.invalidateListing()
		s.recordOutcome(actionDelete, string(domain.OutcomeOK))
		return domain.OK(), nil
	}

	var affected int64
	err := s.timeStorage("delete", func() error {
		var err error
		affected, err = s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		s.recordOutcome(actionDelete, outcomePersistenceError)
		return domain.ActionResult{}, apperrors.NewPersistenceError(actionDelete, msgDeleteDatabaseError, err)
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID), slog.Int64("rows_affected", affected))
	s.invalidateListing()
	s.recordOutcome(actionDelete, string(domain.OutcomeOK))
	return domain.OK(), nil
}

func (s *InvoiceService) invalidateListing() {
	if s.views != nil {
		s.views.Invalidate(domain.InvoicesListingPath)
	}
}

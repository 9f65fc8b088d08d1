package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/apperrors"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portssvc "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/services"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/dto"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers the invoices listing, its reads and the form actions.
// Form posts mirror the PUT and DELETE routes for clients that can only submit forms.
func registerInvoiceRoutes(invoices *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices.GET("", h.listInvoices)
	invoices.POST("", h.createInvoice)
	invoices.GET("/:id", h.getInvoice)
	invoices.PUT("/:id", h.updateInvoice)
	invoices.POST("/:id/edit", h.updateInvoice)
	invoices.DELETE("/:id", h.deleteInvoice)
	invoices.POST("/:id/delete", h.deleteInvoice)
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves one page of invoices, newest first, filtered by a search term
// @Tags invoices
// @Produce  json
// @Param   query query string false "Search over customer, email, amount, date and status"
// @Param   page  query int    false "Page number (1-based)" default(1)
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} dto.ErrorBoundaryResponse
// @Router /dashboard/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(page))
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Retrieves the invoice an edit form is prefilled from
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} dto.ErrorBoundaryResponse
// @Router /dashboard/invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("invoice_id", c.Param("id")))

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Validates the invoice form, stores the invoice dated today and redirects to the listing
// @Tags invoices
// @Accept  x-www-form-urlencoded,json
// @Produce  json
// @Param   invoice body dto.InvoiceFormRequest true "Invoice form"
// @Success 303 "Redirect to /dashboard/invoices"
// @Failure 422 {object} dto.FormStateResponse
// @Failure 500 {object} dto.ErrorBoundaryResponse
// @Router /dashboard/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var form dto.InvoiceFormRequest
	if !bindInvoiceForm(c, logger, &form) {
		return
	}

	result, err := h.invoiceService.CreateInvoice(c.Request.Context(), domain.FormState{}, form)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	respondAction(c, result)
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Validates the invoice form and replaces customer, amount and status. Id and date never change.
// @Tags invoices
// @Accept  x-www-form-urlencoded,json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   invoice body dto.InvoiceFormRequest true "Invoice form"
// @Success 303 "Redirect to /dashboard/invoices"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 422 {object} dto.FormStateResponse
// @Failure 500 {object} dto.ErrorBoundaryResponse
// @Router /dashboard/invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("invoice_id", invoiceID))

	var form dto.InvoiceFormRequest
	if !bindInvoiceForm(c, logger, &form) {
		return
	}

	result, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, domain.FormState{}, form)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	respondAction(c, result)
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Hard-deletes an invoice. Deleting an absent invoice also succeeds.
// @Tags invoices
// @Param   id path string true "Invoice ID"
// @Success 204 "Deleted"
// @Failure 500 {object} dto.ErrorBoundaryResponse
// @Router /dashboard/invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("invoice_id", invoiceID))

	result, err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	respondAction(c, result)
}

func bindInvoiceForm(c *gin.Context, logger *slog.Logger, form *dto.InvoiceFormRequest) bool {
	if err := c.ShouldBind(form); err != nil {
		logger.Warn("Failed to bind invoice form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// respondAction writes the HTTP rendition of an action result.
func respondAction(c *gin.Context, result domain.ActionResult) {
	switch result.Outcome {
	case domain.OutcomeRedirect:
		c.Redirect(http.StatusSeeOther, result.RedirectTo)
	case domain.OutcomeValidationFailure:
		c.JSON(http.StatusUnprocessableEntity, dto.ToFormStateResponse(result.State))
	default:
		c.Status(http.StatusNoContent)
	}
}

// fail maps a service error. Persistence failures are left to the error boundary.
func (h *invoiceHandler) fail(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Invoice not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
	case apperrors.IsPersistence(err):
		_ = c.Error(err)
	default:
		logger.Error("Unexpected invoice service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

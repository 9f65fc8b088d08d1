package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/services"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/dto"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerReaderSvc
}

func newCustomerHandler(cs portssvc.CustomerReaderSvc) *customerHandler {
	return &customerHandler{customerService: cs}
}

func registerCustomerRoutes(customers *gin.RouterGroup, customerService portssvc.CustomerReaderSvc) {
	h := newCustomerHandler(customerService)
	customers.GET("", h.listCustomers)
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves the customers an invoice can be issued to, ordered by name
// @Tags customers
// @Produce  json
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} map[string]string "Failed to retrieve customers"
// @Router /dashboard/customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list customers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

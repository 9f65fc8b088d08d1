package handlers

import (
	"net/http"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portssvc "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/services"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// mutationLimiter may be nil to serve mutations unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	mutationLimiter *limiter.Limiter,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupDashboardRoutes(r, services, mutationLimiter)
}

// setupDashboardRoutes configures the /dashboard group. The invoices segment
// sits behind its own error boundary.
func setupDashboardRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	mutationLimiter *limiter.Limiter,
) {
	dashboard := r.Group("/dashboard")

	invoiceMiddleware := []gin.HandlerFunc{middleware.ErrorBoundary(domain.InvoicesListingPath)}
	if mutationLimiter != nil {
		invoiceMiddleware = append(invoiceMiddleware, middleware.RateLimit(mutationLimiter))
	}

	registerInvoiceRoutes(dashboard.Group("/invoices", invoiceMiddleware...), services.Invoice)
	registerCustomerRoutes(dashboard.Group("/customers"), services.Customer)
}

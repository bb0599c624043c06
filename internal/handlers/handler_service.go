package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/middleware"
)

// serviceHandler handles HTTP requests related to services.
type serviceHandler struct {
	serviceService portssvc.ServiceSvcFacade
}

// newServiceHandler creates a new serviceHandler.
func newServiceHandler(ss portssvc.ServiceSvcFacade) *serviceHandler {
	return &serviceHandler{
		serviceService: ss,
	}
}

// registerServiceRoutes registers routes related to services.
func registerServiceRoutes(rg *gin.RouterGroup, serviceService portssvc.ServiceSvcFacade) {
	h := newServiceHandler(serviceService)

	services := rg.Group("/services")
	{
		services.GET("/customers/:customerID", h.listServicesByCustomer)
	}
}

// listServicesByCustomer godoc
// @Summary List a customer's services with receipt totals
// @Description Retrieves the customer's services, each with aggregated receipt and pending amounts
// @Tags services
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {array} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse "Customer, services or receipts not found"
// @Failure 500 {object} dto.ErrorResponse "Unexpected error"
// @Router /services/customers/{customerID} [get]
func (h *serviceHandler) listServicesByCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	services, err := h.serviceService.ListServicesByCustomer(c.Request.Context(), customerID)
	if err != nil {
		logger.Warn("Failed to list services", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/middleware"
)

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: rs,
	}
}

// registerReceiptRoutes registers routes related to receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.GET("/services/:serviceID/customers/:customerID", h.listReceiptsByServiceAndCustomer)
	}
}

// listReceiptsByServiceAndCustomer godoc
// @Summary List receipts for a service and customer
// @Description Retrieves all receipts of a service+customer pair, newest due date first
// @Tags receipts
// @Produce  json
// @Param   serviceID path string true "Service ID"
// @Param   customerID path string true "Customer ID"
// @Success 200 {array} dto.ReceiptResponse
// @Failure 404 {object} dto.ErrorResponse "Customer, service or receipts not found"
// @Failure 500 {object} dto.ErrorResponse "Unexpected error"
// @Router /receipts/services/{serviceID}/customers/{customerID} [get]
func (h *receiptHandler) listReceiptsByServiceAndCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("serviceID")
	customerID := c.Param("customerID")

	receipts, err := h.receiptService.ListReceiptsByServiceAndCustomer(c.Request.Context(), serviceID, customerID)
	if err != nil {
		logger.Warn("Failed to list receipts",
			slog.String("service_id", serviceID),
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipts)
}

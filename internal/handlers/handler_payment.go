package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/dto"
	"github.com/payservice/receipt_payments_app/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("/receipts/:receiptID/customers/:customerID", h.registerPayment)
		payments.GET("/customers/:customerID", h.listPaymentsByCustomer)
	}
}

// registerPayment godoc
// @Summary Register a payment against a receipt
// @Description Validates and applies a payment to the given receipt on behalf of the given customer
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Param   customerID path string true "Customer ID"
// @Param   payment body dto.RegisterPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount, unsupported currency or receipt already paid"
// @Failure 404 {object} dto.ErrorResponse "Receipt not found for this customer"
// @Failure 409 {object} dto.ErrorResponse "An earlier receipt for the same service is still unpaid"
// @Failure 422 {object} dto.ErrorResponse "Converted amount exceeds the pending balance"
// @Failure 500 {object} dto.ErrorResponse "Unexpected error"
// @Router /payments/receipts/{receiptID}/customers/{customerID} [post]
func (h *paymentHandler) registerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")
	customerID := c.Param("customerID")

	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "invalid request format: "+err.Error(), c.Request.URL.Path))
		return
	}

	logger = logger.With(slog.String("receipt_id", receiptID), slog.String("customer_id", customerID))
	logger.Info("Received request to register payment",
		slog.String("amount", req.Amount.String()),
		slog.String("payment_currency", req.PaymentCurrency),
	)

	resp, err := h.paymentService.RegisterPayment(c.Request.Context(), receiptID, customerID, req)
	if err != nil {
		logger.Warn("Payment registration rejected", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Payment registered successfully", slog.String("new_status", resp.PaymentStatus))
	c.JSON(http.StatusCreated, resp)
}

// listPaymentsByCustomer godoc
// @Summary List a customer's payments
// @Description Retrieves the customer's payment history, most recent first
// @Tags payments
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {array} dto.PaymentResponse
// @Success 204 "Customer exists but has no payments"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Unexpected error"
// @Router /payments/customers/{customerID} [get]
func (h *paymentHandler) listPaymentsByCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	payments, err := h.paymentService.ListPaymentsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		logger.Warn("Failed to list payments", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/dto"
	"github.com/payservice/receipt_payments_app/internal/handlers"
	"github.com/payservice/receipt_payments_app/pkg/config"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) RegisterPayment(ctx context.Context, receiptID, customerID string, req dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	args := m.Called(ctx, receiptID, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentResponse), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByCustomer(ctx context.Context, customerID string) ([]dto.PaymentResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PaymentResponse), args.Error(1)
}

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

func (m *MockReceiptService) ListReceiptsByServiceAndCustomer(ctx context.Context, serviceID, customerID string) ([]dto.ReceiptResponse, error) {
	args := m.Called(ctx, serviceID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReceiptResponse), args.Error(1)
}

// --- Mock ServiceService ---
type MockServiceService struct {
	mock.Mock
}

var _ portssvc.ServiceSvcFacade = (*MockServiceService)(nil)

func (m *MockServiceService) ListServicesByCustomer(ctx context.Context, customerID string) ([]dto.ServiceResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ServiceResponse), args.Error(1)
}

// --- Test Suite Setup ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *MockPaymentService
	mockReceiptService *MockReceiptService
	mockServiceService *MockServiceService

	receiptID  string
	customerID string
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidations())

	suite.router = gin.New()
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockReceiptService = new(MockReceiptService)
	suite.mockServiceService = new(MockServiceService)

	cfg := &config.Config{IsProduction: true}
	container := &portssvc.ServiceContainer{
		Payment: suite.mockPaymentService,
		Receipt: suite.mockReceiptService,
		Service: suite.mockServiceService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)

	suite.receiptID = uuid.NewString()
	suite.customerID = uuid.NewString()
}

func (suite *PaymentHandlerTestSuite) registerPaymentURL() string {
	return fmt.Sprintf("/api/v1/payments/receipts/%s/customers/%s", suite.receiptID, suite.customerID)
}

func (suite *PaymentHandlerTestSuite) postPayment(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, suite.registerPaymentURL(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PaymentHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- Test Cases ---

func (suite *PaymentHandlerTestSuite) TestRegisterPayment_Created() {
	resp := &dto.PaymentResponse{
		Amount:                decimal.RequireFromString("10.00"),
		PaymentCurrency:       "PEN",
		ExchangeRate:          decimal.NewFromInt(1),
		PreviousPendingAmount: decimal.RequireFromString("50.00"),
		NewPendingAmount:      decimal.RequireFromString("40.00"),
		PaymentStatus:         "PARTIALLY_PAID",
		PaymentDate:           time.Now().UTC(),
	}
	suite.mockPaymentService.On("RegisterPayment", mock.Anything, suite.receiptID, suite.customerID, mock.AnythingOfType("dto.RegisterPaymentRequest")).
		Return(resp, nil).Once()

	w := suite.postPayment(`{"amount": "10.00", "paymentCurrency": "PEN"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("PARTIALLY_PAID", body.PaymentStatus)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestRegisterPayment_MalformedCurrencyRejectedAtBinding() {
	w := suite.postPayment(`{"amount": "10.00", "paymentCurrency": "SOLES"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "RegisterPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestRegisterPayment_ValidationErrorMapsTo400() {
	suite.mockPaymentService.On("RegisterPayment", mock.Anything, suite.receiptID, suite.customerID, mock.AnythingOfType("dto.RegisterPaymentRequest")).
		Return(nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)).Once()

	w := suite.postPayment(`{"amount": "0", "paymentCurrency": "PEN"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeError(w)
	suite.Equal(http.StatusBadRequest, body.Code)
	suite.Equal("Bad Request", body.Error)
	suite.Equal(suite.registerPaymentURL(), body.Path)
}

func (suite *PaymentHandlerTestSuite) TestRegisterPayment_NotFoundMapsTo404() {
	suite.mockPaymentService.On("RegisterPayment", mock.Anything, suite.receiptID, suite.customerID, mock.AnythingOfType("dto.RegisterPaymentRequest")).
		Return(nil, fmt.Errorf("%w: receipt not found", apperrors.ErrNotFound)).Once()

	w := suite.postPayment(`{"amount": "10.00", "paymentCurrency": "PEN"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Not Found", suite.decodeError(w).Error)
}

func (suite *PaymentHandlerTestSuite) TestRegisterPayment_PendingObligationMapsTo409() {
	suite.mockPaymentService.On("RegisterPayment", mock.Anything, suite.receiptID, suite.customerID, mock.AnythingOfType("dto.RegisterPaymentRequest")).
		Return(nil, fmt.Errorf("%w: cannot pay this receipt while previous receipts are unpaid", apperrors.ErrPendingObligation)).Once()

	w := suite.postPayment(`{"amount": "10.00", "paymentCurrency": "PEN"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Conflict", suite.decodeError(w).Error)
}

func (suite *PaymentHandlerTestSuite) TestRegisterPayment_OverpaymentMapsTo422() {
	suite.mockPaymentService.On("RegisterPayment", mock.Anything, suite.receiptID, suite.customerID, mock.AnythingOfType("dto.RegisterPaymentRequest")).
		Return(nil, fmt.Errorf("%w: payment of 100 exceeds pending amount 50.00", apperrors.ErrOverpayment)).Once()

	w := suite.postPayment(`{"amount": "100", "paymentCurrency": "PEN"}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal("Unprocessable Entity", suite.decodeError(w).Error)
}

func (suite *PaymentHandlerTestSuite) TestRegisterPayment_UnexpectedErrorMapsTo500() {
	suite.mockPaymentService.On("RegisterPayment", mock.Anything, suite.receiptID, suite.customerID, mock.AnythingOfType("dto.RegisterPaymentRequest")).
		Return(nil, fmt.Errorf("connection refused")).Once()

	w := suite.postPayment(`{"amount": "10.00", "paymentCurrency": "PEN"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decodeError(w)
	// Internal details never reach the caller.
	suite.NotContains(body.Message, "connection refused")
}

func (suite *PaymentHandlerTestSuite) TestListPayments_OK() {
	responses := []dto.PaymentResponse{{
		Amount:          decimal.RequireFromString("10.00"),
		PaymentCurrency: "PEN",
		PaymentStatus:   "PAID",
	}}
	suite.mockPaymentService.On("ListPaymentsByCustomer", mock.Anything, suite.customerID).Return(responses, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/customers/"+suite.customerID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
}

func (suite *PaymentHandlerTestSuite) TestListPayments_EmptyResultMapsTo204() {
	suite.mockPaymentService.On("ListPaymentsByCustomer", mock.Anything, suite.customerID).
		Return(nil, fmt.Errorf("%w: no payments found for customer", apperrors.ErrEmptyResult)).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/customers/"+suite.customerID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
}

func (suite *PaymentHandlerTestSuite) TestListReceipts_OK() {
	serviceID := uuid.NewString()
	responses := []dto.ReceiptResponse{{ReceiptNumber: "REC-001", Currency: "PEN", ReceiptStatus: "PENDING"}}
	suite.mockReceiptService.On("ListReceiptsByServiceAndCustomer", mock.Anything, serviceID, suite.customerID).
		Return(responses, nil).Once()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/receipts/services/%s/customers/%s", serviceID, suite.customerID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestListServices_NotFoundMapsTo404() {
	suite.mockServiceService.On("ListServicesByCustomer", mock.Anything, suite.customerID).
		Return(nil, fmt.Errorf("%w: customer has no registered services", apperrors.ErrNotFound)).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/customers/"+suite.customerID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestListServices_OK() {
	responses := []dto.ServiceResponse{{
		ServiceName:   "Internet 200Mbps",
		Currency:      "PEN",
		Amount:        decimal.RequireFromString("200.00"),
		PendingAmount: decimal.RequireFromString("45.50"),
	}}
	suite.mockServiceService.On("ListServicesByCustomer", mock.Anything, suite.customerID).Return(responses, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/customers/"+suite.customerID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.ServiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("Internet 200Mbps", body[0].ServiceName)
}

func (suite *PaymentHandlerTestSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

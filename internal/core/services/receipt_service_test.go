package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/payservice/receipt_payments_app/internal/apperrors"
	"github.com/payservice/receipt_payments_app/internal/core/domain"
	portssvc "github.com/payservice/receipt_payments_app/internal/core/ports/services"
	"github.com/payservice/receipt_payments_app/internal/core/services"
)

type ReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo  *MockReceiptRepository
	mockCustomerRepo *MockCustomerRepository
	mockServiceRepo  *MockServiceRepository
	service          portssvc.ReceiptSvcFacade

	customerID string
	serviceID  string
	customer   domain.Customer
	svc        domain.Service
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewReceiptService(suite.mockReceiptRepo, suite.mockCustomerRepo, suite.mockServiceRepo)

	suite.customerID = uuid.NewString()
	suite.serviceID = uuid.NewString()
	suite.customer = domain.Customer{CustomerID: suite.customerID, Names: "Jorge", Lastname: "Salas", Email: "jorge@example.com"}
	suite.svc = domain.Service{ServiceID: suite.serviceID, CustomerID: suite.customerID, ServiceName: "Cable TV", IsActive: true}
}

func (suite *ReceiptServiceTestSuite) receiptForPeriod(period string, due time.Time) domain.Receipt {
	return domain.Receipt{
		ReceiptID:     uuid.NewString(),
		ReceiptNumber: "REC-" + period,
		ServiceID:     suite.serviceID,
		CustomerID:    suite.customerID,
		PeriodLabel:   period,
		DueDate:       due,
		ReceiptAmount: decimal.RequireFromString("80.00"),
		PendingAmount: decimal.RequireFromString("80.00"),
		Currency:      domain.CurrencyPEN,
		Status:        domain.ReceiptPending,
	}
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_Success() {
	ctx := context.Background()
	newest := suite.receiptForPeriod("2026-02", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	oldest := suite.receiptForPeriod("2026-01", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(&suite.customer, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.serviceID).Return(&suite.svc, nil).Once()
	suite.mockReceiptRepo.On("FindReceiptsByServiceAndCustomer", ctx, suite.serviceID, suite.customerID).
		Return([]domain.Receipt{newest, oldest}, nil).Once()

	responses, err := suite.service.ListReceiptsByServiceAndCustomer(ctx, suite.serviceID, suite.customerID)

	suite.Require().NoError(err)
	suite.Require().Len(responses, 2)
	// Repository ordering (due date descending) is preserved.
	suite.Equal(newest.ReceiptNumber, responses[0].ReceiptNumber)
	suite.Equal(oldest.ReceiptNumber, responses[1].ReceiptNumber)
	suite.Require().NotNil(responses[0].Customer)
	suite.Equal(suite.customer.Email, responses[0].Customer.Email)
	suite.Require().NotNil(responses[0].Service)
	suite.Equal(suite.svc.ServiceName, responses[0].Service.ServiceName)

	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_CustomerNotFound() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListReceiptsByServiceAndCustomer(ctx, suite.serviceID, suite.customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_ServiceNotFound() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(&suite.customer, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.serviceID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListReceiptsByServiceAndCustomer(ctx, suite.serviceID, suite.customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_EmptyListing() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID).Return(&suite.customer, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.serviceID).Return(&suite.svc, nil).Once()
	suite.mockReceiptRepo.On("FindReceiptsByServiceAndCustomer", ctx, suite.serviceID, suite.customerID).
		Return([]domain.Receipt{}, nil).Once()

	_, err := suite.service.ListReceiptsByServiceAndCustomer(ctx, suite.serviceID, suite.customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}

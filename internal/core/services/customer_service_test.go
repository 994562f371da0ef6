package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockLedgerRepo   *MockLedgerRepository
	service          portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo, suite.mockLedgerRepo)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Ali", Phone: "0300-1234567"}

	suite.mockCustomerRepo.On("Append", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Ali" && c.CustomerID != ""
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Ali", customer.Name)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_LeavesLedgerAlone() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("RemoveByID", ctx, "c1").Return(nil).Once()

	err := suite.service.DeleteCustomer(ctx, "c1")

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RemoveByID", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestFindCustomer_NotFound() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{{CustomerID: "other"}}, nil).Once()

	customer, err := suite.service.FindCustomer(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(customer)
}

func (suite *CustomerServiceTestSuite) TestStatement_RunningBalance() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{
		{LedgerEntryID: "1", CustomerID: "c1", Date: "2026-08-01", Type: domain.Debit, Amount: decimal.RequireFromString("500")},
		{LedgerEntryID: "2", CustomerID: "c1", Date: "2026-08-02", Type: domain.Credit, Amount: decimal.RequireFromString("200")},
		{LedgerEntryID: "3", CustomerID: "c1", Date: "2026-08-03", Type: domain.Debit, Amount: decimal.RequireFromString("100")},
	}, nil).Once()

	lines, balance, err := suite.service.Statement(ctx, "c1")

	suite.Require().NoError(err)
	suite.Require().Len(lines, 3)
	suite.True(balance.Equal(decimal.RequireFromString("400")))
}

func (suite *CustomerServiceTestSuite) TestStatement_DeletedCustomerEmpty() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{}, nil).Once()

	lines, balance, err := suite.service.Statement(ctx, "gone")

	suite.Require().NoError(err)
	suite.Empty(lines)
	suite.True(balance.IsZero())
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

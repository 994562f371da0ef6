package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) List(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ReplaceAll(ctx context.Context, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) Append(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) RemoveByID(ctx context.Context, ledgerEntryID string) error {
	args := m.Called(ctx, ledgerEntryID)
	return args.Error(0)
}

// --- Mock EggLogRepository ---
type MockEggLogRepository struct {
	mock.Mock
}

func (m *MockEggLogRepository) List(ctx context.Context) ([]domain.EggLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EggLog), args.Error(1)
}

func (m *MockEggLogRepository) ReplaceAll(ctx context.Context, logs []domain.EggLog) error {
	args := m.Called(ctx, logs)
	return args.Error(0)
}

func (m *MockEggLogRepository) Append(ctx context.Context, log domain.EggLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockEggLogRepository) RemoveByID(ctx context.Context, eggLogID string) error {
	args := m.Called(ctx, eggLogID)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ReplaceAll(ctx context.Context, customers []domain.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

func (m *MockCustomerRepository) Append(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) RemoveByID(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockEggLogRepo   *MockEggLogRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockEggLogRepo = new(MockEggLogRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockEggLogRepo, suite.mockCustomerRepo)
}

func intPtr(v int64) *int64 { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_DebitWithQuantity_GeneratesEggLog() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateLedgerEntryRequest{
		CustomerID:   customerID,
		Date:         "2026-08-30",
		Description:  "2 trays",
		Type:         domain.Debit,
		Amount:       decimal.RequireFromString("1000"),
		Quantity:     intPtr(20),
		PricePerUnit: decPtr("50"),
	}

	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{{CustomerID: customerID, Name: "Ali"}}, nil).Once()
	suite.mockLedgerRepo.On("Append", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.CustomerID == customerID && e.Type == domain.Debit && e.Quantity == 20
	})).Return(nil).Once()
	suite.mockEggLogRepo.On("Append", ctx, mock.MatchedBy(func(l domain.EggLog) bool {
		return l.CollectedCount == 0 &&
			l.SoldCount == 20 &&
			l.Date == "2026-08-30" &&
			l.SalePrice.Equal(decimal.RequireFromString("50")) &&
			l.TotalSale.Equal(decimal.RequireFromString("1000"))
	})).Return(nil).Once()

	entry, generated, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Require().NotNil(generated)
	suite.Equal(entry.LedgerEntryID, generated.LedgerID)
	suite.Equal(entry.Date, generated.Date)
	suite.True(generated.TotalSale.Equal(entry.Amount))
	suite.True(generated.IsGenerated())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockEggLogRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_DebitWithoutPrice_SalePriceZero() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		CustomerID: uuid.NewString(),
		Date:       "2026-08-30",
		Type:       domain.Debit,
		Amount:     decimal.RequireFromString("750"),
		Quantity:   intPtr(15),
	}

	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{}, nil).Once()
	suite.mockLedgerRepo.On("Append", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()
	suite.mockEggLogRepo.On("Append", ctx, mock.MatchedBy(func(l domain.EggLog) bool {
		return l.SalePrice.IsZero() && l.TotalSale.Equal(decimal.RequireFromString("750"))
	})).Return(nil).Once()

	_, generated, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(generated)
	suite.mockEggLogRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_Credit_NoEggLog() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateLedgerEntryRequest{
		CustomerID: customerID,
		Date:       "2026-08-30",
		Type:       domain.Credit,
		Amount:     decimal.RequireFromString("200"),
	}

	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{{CustomerID: customerID}}, nil).Once()
	suite.mockLedgerRepo.On("Append", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, generated, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Nil(generated)
	suite.mockEggLogRepo.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_NegativeAmount_ValidationError() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		CustomerID: uuid.NewString(),
		Date:       "2026-08-30",
		Type:       domain.Credit,
		Amount:     decimal.RequireFromString("-5"),
	}

	entry, generated, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.Nil(generated)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_UnknownCustomer_StillSaves() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		CustomerID: "gone",
		Date:       "2026-08-30",
		Type:       domain.Credit,
		Amount:     decimal.RequireFromString("100"),
	}

	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{}, nil).Once()
	suite.mockLedgerRepo.On("Append", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, _, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("gone", entry.CustomerID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteLedgerEntry_CascadesLinkedEggLog() {
	ctx := context.Background()
	entryID := uuid.NewString()
	linkedLogID := uuid.NewString()

	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{{LedgerEntryID: entryID}}, nil).Once()
	suite.mockLedgerRepo.On("RemoveByID", ctx, entryID).Return(nil).Once()
	suite.mockEggLogRepo.On("List", ctx).Return([]domain.EggLog{
		{EggLogID: uuid.NewString(), CollectedCount: 40},
		{EggLogID: linkedLogID, LedgerID: entryID, SoldCount: 20},
	}, nil).Once()
	suite.mockEggLogRepo.On("RemoveByID", ctx, linkedLogID).Return(nil).Once()

	err := suite.service.DeleteLedgerEntry(ctx, entryID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockEggLogRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteLedgerEntry_FirstMatchingLogOnly() {
	ctx := context.Background()
	entryID := uuid.NewString()
	firstLogID := uuid.NewString()
	secondLogID := uuid.NewString()

	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{{LedgerEntryID: entryID}}, nil).Once()
	suite.mockLedgerRepo.On("RemoveByID", ctx, entryID).Return(nil).Once()
	suite.mockEggLogRepo.On("List", ctx).Return([]domain.EggLog{
		{EggLogID: firstLogID, LedgerID: entryID},
		{EggLogID: secondLogID, LedgerID: entryID},
	}, nil).Once()
	suite.mockEggLogRepo.On("RemoveByID", ctx, firstLogID).Return(nil).Once()

	err := suite.service.DeleteLedgerEntry(ctx, entryID)

	suite.Require().NoError(err)
	suite.mockEggLogRepo.AssertNotCalled(suite.T(), "RemoveByID", ctx, secondLogID)
	suite.mockEggLogRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteLedgerEntry_NoLinkedLog_NoCascade() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{{LedgerEntryID: entryID}}, nil).Once()
	suite.mockLedgerRepo.On("RemoveByID", ctx, entryID).Return(nil).Once()
	suite.mockEggLogRepo.On("List", ctx).Return([]domain.EggLog{
		{EggLogID: uuid.NewString(), LedgerID: uuid.NewString()},
	}, nil).Once()

	err := suite.service.DeleteLedgerEntry(ctx, entryID)

	suite.Require().NoError(err)
	suite.mockEggLogRepo.AssertNotCalled(suite.T(), "RemoveByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteLedgerEntry_NotFound() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{}, nil).Once()

	err := suite.service.DeleteLedgerEntry(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RemoveByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_AppendError() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		CustomerID: uuid.NewString(),
		Date:       "2026-08-30",
		Type:       domain.Credit,
		Amount:     decimal.RequireFromString("10"),
	}
	expectedErr := assert.AnError

	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{}, nil).Once()
	suite.mockLedgerRepo.On("Append", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(expectedErr).Once()

	_, _, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

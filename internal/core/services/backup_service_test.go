package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ReplaceAll(ctx context.Context, expenses []domain.Expense) error {
	args := m.Called(ctx, expenses)
	return args.Error(0)
}

func (m *MockExpenseRepository) Append(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) RemoveByID(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Mock PayeeRepository ---
type MockPayeeRepository struct {
	mock.Mock
}

func (m *MockPayeeRepository) List(ctx context.Context) ([]domain.Payee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payee), args.Error(1)
}

func (m *MockPayeeRepository) ReplaceAll(ctx context.Context, payees []domain.Payee) error {
	args := m.Called(ctx, payees)
	return args.Error(0)
}

func (m *MockPayeeRepository) Append(ctx context.Context, payee domain.Payee) error {
	args := m.Called(ctx, payee)
	return args.Error(0)
}

func (m *MockPayeeRepository) RemoveByID(ctx context.Context, payeeID string) error {
	args := m.Called(ctx, payeeID)
	return args.Error(0)
}

// --- Test Suite ---
type BackupServiceTestSuite struct {
	suite.Suite
	mockEggLogRepo   *MockEggLogRepository
	mockCustomerRepo *MockCustomerRepository
	mockLedgerRepo   *MockLedgerRepository
	mockExpenseRepo  *MockExpenseRepository
	mockPayeeRepo    *MockPayeeRepository
	service          portssvc.BackupSvcFacade
}

func (suite *BackupServiceTestSuite) SetupTest() {
	suite.mockEggLogRepo = new(MockEggLogRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockPayeeRepo = new(MockPayeeRepository)
	suite.service = services.NewBackupService(
		suite.mockEggLogRepo, suite.mockCustomerRepo, suite.mockLedgerRepo,
		suite.mockExpenseRepo, suite.mockPayeeRepo)
}

// --- Test Cases ---

func (suite *BackupServiceTestSuite) TestExportBackup_SnapshotsAllCollections() {
	ctx := context.Background()

	suite.mockEggLogRepo.On("List", ctx).Return([]domain.EggLog{{EggLogID: "l1", Date: "2026-08-30", CollectedCount: 50}}, nil).Once()
	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{{CustomerID: "c1", Name: "Ali"}}, nil).Once()
	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{{LedgerEntryID: "e1", CustomerID: "c1", Date: "2026-08-30", Type: domain.Debit, Amount: decimal.RequireFromString("100")}}, nil).Once()
	suite.mockExpenseRepo.On("List", ctx).Return([]domain.Expense{}, nil).Once()
	suite.mockPayeeRepo.On("List", ctx).Return([]domain.Payee{}, nil).Once()

	doc, err := suite.service.ExportBackup(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(doc)
	suite.Equal(dto.BackupVersion, doc.Version)
	suite.NotEmpty(doc.Timestamp)
	suite.Require().Len(doc.Data.EggLogs, 1)
	suite.Equal("l1", doc.Data.EggLogs[0].ID)
	suite.Require().Len(doc.Data.Ledger, 1)
	suite.Equal("c1", doc.Data.Ledger[0].CustomerID)
	suite.Empty(doc.Data.Expenses)
}

func (suite *BackupServiceTestSuite) TestRestoreBackup_MissingCoreCollection_Rejected() {
	ctx := context.Background()
	data := dto.BackupData{
		EggLogs:   []models.EggLog{},
		Customers: []models.Customer{},
		// Ledger absent.
	}

	err := suite.service.RestoreBackup(ctx, data)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEggLogRepo.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything)
}

func (suite *BackupServiceTestSuite) TestRestoreBackup_ReplacesAllCollections() {
	ctx := context.Background()
	data := dto.BackupData{
		EggLogs:   []models.EggLog{{ID: "l1", Date: "2026-08-30", CollectedCount: 50}},
		Customers: []models.Customer{{ID: "c1", Name: "Ali"}},
		Ledger:    []models.LedgerEntry{{ID: "e1", CustomerID: "c1", Date: "2026-08-30", Type: "DEBIT", Amount: decimal.RequireFromString("100")}},
		// Expenses and payees absent: restore them as empty.
	}

	suite.mockEggLogRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(logs []domain.EggLog) bool {
		return len(logs) == 1 && logs[0].EggLogID == "l1"
	})).Return(nil).Once()
	suite.mockCustomerRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(cs []domain.Customer) bool {
		return len(cs) == 1 && cs[0].Name == "Ali"
	})).Return(nil).Once()
	suite.mockLedgerRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(es []domain.LedgerEntry) bool {
		return len(es) == 1 && es[0].Type == domain.Debit
	})).Return(nil).Once()
	suite.mockExpenseRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(es []domain.Expense) bool {
		return len(es) == 0
	})).Return(nil).Once()
	suite.mockPayeeRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(ps []domain.Payee) bool {
		return len(ps) == 0
	})).Return(nil).Once()

	err := suite.service.RestoreBackup(ctx, data)

	suite.Require().NoError(err)
	suite.mockEggLogRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockPayeeRepo.AssertExpectations(suite.T())
}

func (suite *BackupServiceTestSuite) TestExportCSV_Eggs() {
	ctx := context.Background()

	suite.mockEggLogRepo.On("List", ctx).Return([]domain.EggLog{
		{EggLogID: "a", Date: "2026-08-30", CollectedCount: 50, SoldCount: 10, SalePrice: decimal.RequireFromString("45"), TotalSale: decimal.RequireFromString("450")},
	}, nil).Once()

	data, err := suite.service.ExportCSV(ctx, portssvc.CollectionEggs)

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	suite.Require().Len(lines, 2)
	suite.Equal("Date,Collected,Sold,Price,TotalSale", lines[0])
	suite.Equal("2026-08-30,50,10,45,450", lines[1])
}

func (suite *BackupServiceTestSuite) TestExportCSV_LedgerResolvesCustomerNames() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{
		{LedgerEntryID: "e1", CustomerID: "c1", Date: "2026-08-30", Description: "2 trays", Type: domain.Debit, Amount: decimal.RequireFromString("1000"), Quantity: 20, PricePerUnit: decimal.RequireFromString("50")},
		{LedgerEntryID: "e2", CustomerID: "gone", Date: "2026-08-31", Type: domain.Credit, Amount: decimal.RequireFromString("300")},
	}, nil).Once()
	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{{CustomerID: "c1", Name: "Ali"}}, nil).Once()

	data, err := suite.service.ExportCSV(ctx, portssvc.CollectionLedger)

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	suite.Require().Len(lines, 3)
	suite.Equal("Date,Customer,Type,Description,Amount,Quantity,PricePerUnit", lines[0])
	suite.Equal("2026-08-30,Ali,DEBIT,2 trays,1000,20,50", lines[1])
	suite.Contains(lines[2], "Unknown")
}

func (suite *BackupServiceTestSuite) TestExportCSV_UnknownCollection() {
	ctx := context.Background()

	_, err := suite.service.ExportCSV(ctx, "chickens")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BackupServiceTestSuite) TestImportCSV_LedgerSkipsUnknownCustomers() {
	ctx := context.Background()
	csvBody := strings.Join([]string{
		"Date,Customer,Type,Description,Amount,Quantity,PricePerUnit",
		"2026-08-30,Ali,DEBIT,2 trays,1000,20,50",
		"2026-08-30,Nobody,CREDIT,payment,300,,",
		"2026-08-31, ali ,CREDIT,case-insensitive,200,,",
	}, "\n")

	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{{CustomerID: "c1", Name: "Ali"}}, nil).Once()
	suite.mockLedgerRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(es []domain.LedgerEntry) bool {
		return len(es) == 2 &&
			es[0].CustomerID == "c1" && es[0].Quantity == 20 &&
			es[1].CustomerID == "c1" && es[1].Type == domain.Credit
	})).Return(nil).Once()

	result, err := suite.service.ImportCSV(ctx, portssvc.CollectionLedger, strings.NewReader(csvBody))

	suite.Require().NoError(err)
	suite.Equal(2, result.Imported)
	suite.Equal(1, result.Skipped)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *BackupServiceTestSuite) TestImportCSV_ExpensesUnknownPayeeImportsAsGeneral() {
	ctx := context.Background()
	csvBody := strings.Join([]string{
		"Date,Payee,PayeeType,TransactionType,Category,Description,Amount",
		"2026-08-30,Feed Store,VENDOR,INVOICE,Feed,bags,3000",
		"2026-08-30,Stranger,-,INVOICE,Other,misc,100",
	}, "\n")

	suite.mockPayeeRepo.On("List", ctx).Return([]domain.Payee{{PayeeID: "p1", Name: "Feed Store"}}, nil).Once()
	suite.mockExpenseRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(es []domain.Expense) bool {
		return len(es) == 2 && es[0].PayeeID == "p1" && es[1].PayeeID == ""
	})).Return(nil).Once()

	result, err := suite.service.ImportCSV(ctx, portssvc.CollectionExpenses, strings.NewReader(csvBody))

	suite.Require().NoError(err)
	suite.Equal(2, result.Imported)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *BackupServiceTestSuite) TestImportCSV_EmptyFile_Malformed() {
	ctx := context.Background()

	_, err := suite.service.ImportCSV(ctx, portssvc.CollectionEggs, strings.NewReader("Date,Collected,Sold,Price,TotalSale\n"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMalformedPayload)
	suite.mockEggLogRepo.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything)
}

func (suite *BackupServiceTestSuite) TestImportCSV_UnparsableNumbersImportAsZero() {
	ctx := context.Background()
	csvBody := strings.Join([]string{
		"Date,Collected,Sold,Price,TotalSale",
		"2026-08-30,fifty,10,abc,450",
	}, "\n")

	suite.mockEggLogRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(logs []domain.EggLog) bool {
		return len(logs) == 1 &&
			logs[0].CollectedCount == 0 &&
			logs[0].SoldCount == 10 &&
			logs[0].SalePrice.IsZero() &&
			logs[0].TotalSale.Equal(decimal.RequireFromString("450"))
	})).Return(nil).Once()

	result, err := suite.service.ImportCSV(ctx, portssvc.CollectionEggs, strings.NewReader(csvBody))

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
	suite.mockEggLogRepo.AssertExpectations(suite.T())
}

func TestBackupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BackupServiceTestSuite))
}

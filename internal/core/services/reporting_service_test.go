package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockEggLogRepo   *MockEggLogRepository
	mockCustomerRepo *MockCustomerRepository
	mockLedgerRepo   *MockLedgerRepository
	mockExpenseRepo  *MockExpenseRepository
	mockPayeeRepo    *MockPayeeRepository
	service          portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockEggLogRepo = new(MockEggLogRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockPayeeRepo = new(MockPayeeRepository)
	suite.service = services.NewReportingService(
		suite.mockEggLogRepo, suite.mockCustomerRepo, suite.mockLedgerRepo,
		suite.mockExpenseRepo, suite.mockPayeeRepo)
}

// A day with 50 eggs collected and a credit sale of 20 eggs for 1000: the
// generated log sells stock without adding general sales, the sheet shows the
// 1000 once, and inventory lands on 30.
func (suite *ReportingServiceTestSuite) TestBalanceSheet_CreditSaleDay() {
	ctx := context.Background()
	eggLogs := []domain.EggLog{
		{EggLogID: "manual", Date: "2026-08-30", CollectedCount: 50},
		{EggLogID: "gen", LedgerID: "entry-1", Date: "2026-08-30", SoldCount: 20, SalePrice: decimal.RequireFromString("50"), TotalSale: decimal.RequireFromString("1000")},
	}
	ledger := []domain.LedgerEntry{
		{LedgerEntryID: "entry-1", CustomerID: "c1", Date: "2026-08-30", Type: domain.Debit, Amount: decimal.RequireFromString("1000"), Quantity: 20},
	}

	suite.mockEggLogRepo.On("List", ctx).Return(eggLogs, nil).Once()
	suite.mockLedgerRepo.On("List", ctx).Return(ledger, nil).Once()
	suite.mockExpenseRepo.On("List", ctx).Return([]domain.Expense{}, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(sheet.Days, 1)
	suite.True(sheet.Days[0].GeneralSales.IsZero())
	suite.True(sheet.Days[0].LedgerSales.Equal(decimal.RequireFromString("1000")))
	suite.True(sheet.Days[0].TotalSale.Equal(decimal.RequireFromString("1000")))
	suite.Equal(int64(30), domain.CurrentInventory(eggLogs))
}

func (suite *ReportingServiceTestSuite) TestDayOverview_TotalsAndInventory() {
	ctx := context.Background()
	eggLogs := []domain.EggLog{
		{EggLogID: "m", Date: "2026-08-30", CollectedCount: 50, SoldCount: 10, SalePrice: decimal.RequireFromString("45"), TotalSale: decimal.RequireFromString("450")},
	}
	expenses := []domain.Expense{
		{ExpenseID: "e", Date: "2026-08-30", Category: "Feed", Type: domain.Invoice, Amount: decimal.RequireFromString("250")},
	}

	suite.mockEggLogRepo.On("List", ctx).Return(eggLogs, nil).Once()
	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{}, nil).Once()
	suite.mockPayeeRepo.On("List", ctx).Return([]domain.Payee{}, nil).Once()
	suite.mockExpenseRepo.On("List", ctx).Return(expenses, nil).Once()

	overview, err := suite.service.DayOverview(ctx, "2026-08-30")

	suite.Require().NoError(err)
	suite.Equal("2026-08-30", overview.Date)
	suite.Require().Len(overview.Records, 2)
	suite.True(overview.TotalIn.Equal(decimal.RequireFromString("450")))
	suite.True(overview.TotalOut.Equal(decimal.RequireFromString("250")))
	suite.Equal(int64(40), overview.Inventory.ClosingInventory)
}

func (suite *ReportingServiceTestSuite) TestOutstanding_LoadsAllCollections() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("List", ctx).Return([]domain.Customer{{CustomerID: "c1", Name: "Ali"}}, nil).Once()
	suite.mockLedgerRepo.On("List", ctx).Return([]domain.LedgerEntry{
		{LedgerEntryID: "e1", CustomerID: "c1", Date: "2026-08-30", Type: domain.Debit, Amount: decimal.RequireFromString("400")},
	}, nil).Once()
	suite.mockPayeeRepo.On("List", ctx).Return([]domain.Payee{}, nil).Once()
	suite.mockExpenseRepo.On("List", ctx).Return([]domain.Expense{}, nil).Once()

	report, err := suite.service.Outstanding(ctx)

	suite.Require().NoError(err)
	suite.True(report.TotalReceivables.Equal(decimal.RequireFromString("400")))
	suite.Require().Len(report.Entries, 1)
	suite.Equal("Ali", report.Entries[0].Name)
	suite.Equal("2026-08-30", report.Entries[0].LastActive)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

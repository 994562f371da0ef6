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

type EggLogServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEggLogRepository
	service  portssvc.EggLogSvcFacade
}

func (suite *EggLogServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEggLogRepository)
	suite.service = services.NewEggLogService(suite.mockRepo)
}

func (suite *EggLogServiceTestSuite) TestCreateEggLog_Success() {
	ctx := context.Background()
	req := dto.CreateEggLogRequest{
		Date:           "2026-08-30",
		CollectedCount: 50,
		SoldCount:      10,
		SalePrice:      decimal.RequireFromString("45"),
		TotalSale:      decimal.RequireFromString("450"),
	}

	suite.mockRepo.On("Append", ctx, mock.MatchedBy(func(l domain.EggLog) bool {
		return l.CollectedCount == 50 && l.SoldCount == 10 && l.LedgerID == "" && l.EggLogID != ""
	})).Return(nil).Once()

	log, err := suite.service.CreateEggLog(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(log)
	suite.False(log.IsGenerated())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EggLogServiceTestSuite) TestCreateEggLog_NegativePrice_ValidationError() {
	ctx := context.Background()
	req := dto.CreateEggLogRequest{
		Date:           "2026-08-30",
		CollectedCount: 50,
		SalePrice:      decimal.RequireFromString("-1"),
	}

	log, err := suite.service.CreateEggLog(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(log)
	suite.mockRepo.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything)
}

func (suite *EggLogServiceTestSuite) TestCurrentInventory_CollectedMinusSold() {
	ctx := context.Background()

	suite.mockRepo.On("List", ctx).Return([]domain.EggLog{
		{EggLogID: "a", Date: "2026-08-28", CollectedCount: 50},
		{EggLogID: "b", Date: "2026-08-29", CollectedCount: 30, SoldCount: 20},
		{EggLogID: "c", Date: "2026-08-30", SoldCount: 25, LedgerID: "entry-1"},
	}, nil).Once()

	stock, err := suite.service.CurrentInventory(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(35), stock)
}

func (suite *EggLogServiceTestSuite) TestInventoryStats_SplitsAroundDate() {
	ctx := context.Background()

	suite.mockRepo.On("List", ctx).Return([]domain.EggLog{
		{EggLogID: "a", Date: "2026-08-28", CollectedCount: 50, SoldCount: 10},
		{EggLogID: "b", Date: "2026-08-30", CollectedCount: 30, SoldCount: 5},
		{EggLogID: "c", Date: "2026-09-01", CollectedCount: 99},
	}, nil).Once()

	stats, err := suite.service.InventoryStats(ctx, "2026-08-30")

	suite.Require().NoError(err)
	suite.Equal(int64(40), stats.OpeningInventory)
	suite.Equal(int64(30), stats.TodayCollected)
	suite.Equal(int64(5), stats.TodaySold)
	suite.Equal(int64(65), stats.ClosingInventory)
}

func (suite *EggLogServiceTestSuite) TestDeleteEggLog_UnknownID_NoError() {
	ctx := context.Background()

	suite.mockRepo.On("RemoveByID", ctx, "missing").Return(nil).Once()

	err := suite.service.DeleteEggLog(ctx, "missing")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestEggLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EggLogServiceTestSuite))
}

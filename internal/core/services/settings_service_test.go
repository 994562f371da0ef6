package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (domain.FarmSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.FarmSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings domain.FarmSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockRepo)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_DefaultsWhenUnsaved() {
	ctx := context.Background()

	suite.mockRepo.On("Get", ctx).Return(domain.DefaultFarmSettings(), nil).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal("Nova Farms", settings.FarmName)
	suite.Equal(domain.ThemeLight, settings.Theme)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SavesInPlace() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		FarmName: "Hilltop Eggs",
		Phone:    "0301-7654321",
		Location: "Murree Road",
		Theme:    domain.ThemeDark,
	}

	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(s domain.FarmSettings) bool {
		return s.FarmName == "Hilltop Eggs" && s.Theme == domain.ThemeDark
	})).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Hilltop Eggs", settings.FarmName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// settingsService manages the farm settings singleton.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (domain.FarmSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.FarmSettings, error) {
	settings := domain.FarmSettings{
		FarmName: req.FarmName,
		Phone:    req.Phone,
		Location: req.Location,
		Theme:    req.Theme,
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return domain.FarmSettings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Settings updated",
		slog.String("farm_name", settings.FarmName), slog.String("theme", string(settings.Theme)))
	return settings, nil
}

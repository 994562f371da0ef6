package services

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
)

// SettingsSvcFacade defines operations on the settings singleton.
type SettingsSvcFacade interface {
	// GetSettings returns the saved settings merged over defaults.
	GetSettings(ctx context.Context) (domain.FarmSettings, error)

	// UpdateSettings replaces the singleton in place.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.FarmSettings, error)
}

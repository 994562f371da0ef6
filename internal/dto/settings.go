package dto

import "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"

// UpdateSettingsRequest defines the data allowed when saving farm settings.
type UpdateSettingsRequest struct {
	FarmName string       `json:"farmName" binding:"required"`
	Phone    string       `json:"phone"`
	Location string       `json:"location"`
	Theme    domain.Theme `json:"theme" binding:"required,oneof=LIGHT DARK FUN"`
}

// SettingsResponse defines the data returned for the settings singleton.
type SettingsResponse struct {
	FarmName string       `json:"farmName"`
	Phone    string       `json:"phone"`
	Location string       `json:"location"`
	Theme    domain.Theme `json:"theme"`
}

// ToSettingsResponse converts domain.FarmSettings to SettingsResponse.
func ToSettingsResponse(s domain.FarmSettings) SettingsResponse {
	return SettingsResponse{
		FarmName: s.FarmName,
		Phone:    s.Phone,
		Location: s.Location,
		Theme:    s.Theme,
	}
}

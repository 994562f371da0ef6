package domain

// Theme is the display mode the UI renders with.
type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
	ThemeFun   Theme = "FUN"
)

// FarmSettings is the app-wide settings singleton. It is created on first use
// with defaults and updated in place.
type FarmSettings struct {
	FarmName string `json:"farmName"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Theme    Theme  `json:"theme"`
}

// DefaultFarmSettings returns the settings used before the user saves any.
func DefaultFarmSettings() FarmSettings {
	return FarmSettings{
		FarmName: "Nova Farms",
		Theme:    ThemeLight,
	}
}

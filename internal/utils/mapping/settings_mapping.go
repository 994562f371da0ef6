package mapping

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
)

// ToModelFarmSettings converts domain settings to the persisted shape.
func ToModelFarmSettings(d domain.FarmSettings) models.FarmSettings {
	return models.FarmSettings{
		FarmName: d.FarmName,
		Phone:    d.Phone,
		Location: d.Location,
		Theme:    string(d.Theme),
	}
}

// ToDomainFarmSettings converts persisted settings back to the domain shape,
// filling gaps from the defaults so partially saved records stay usable.
func ToDomainFarmSettings(m models.FarmSettings) domain.FarmSettings {
	d := domain.DefaultFarmSettings()
	if m.FarmName != "" {
		d.FarmName = m.FarmName
	}
	d.Phone = m.Phone
	d.Location = m.Location
	if m.Theme != "" {
		d.Theme = domain.Theme(m.Theme)
	}
	return d
}

package mapping

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
)

// ToModelPayee converts a domain payee to its persisted shape.
func ToModelPayee(d domain.Payee) models.Payee {
	return models.Payee{
		ID:    d.PayeeID,
		Name:  d.Name,
		Type:  d.Type,
		Phone: d.Phone,
	}
}

// ToDomainPayee converts a persisted payee back to the domain shape.
func ToDomainPayee(m models.Payee) domain.Payee {
	return domain.Payee{
		PayeeID: m.ID,
		Name:    m.Name,
		Type:    m.Type,
		Phone:   m.Phone,
	}
}

// ToModelPayees converts a slice of domain payees.
func ToModelPayees(ds []domain.Payee) []models.Payee {
	ms := make([]models.Payee, len(ds))
	for i, d := range ds {
		ms[i] = ToModelPayee(d)
	}
	return ms
}

// ToDomainPayees converts a slice of persisted payees.
func ToDomainPayees(ms []models.Payee) []domain.Payee {
	ds := make([]domain.Payee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayee(m)
	}
	return ds
}

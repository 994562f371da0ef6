package mapping

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
)

// ToModelCustomer converts a domain customer to its persisted shape.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		ID:    d.CustomerID,
		Name:  d.Name,
		Phone: d.Phone,
	}
}

// ToDomainCustomer converts a persisted customer back to the domain shape.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.ID,
		Name:       m.Name,
		Phone:      m.Phone,
	}
}

// ToModelCustomers converts a slice of domain customers.
func ToModelCustomers(ds []domain.Customer) []models.Customer {
	ms := make([]models.Customer, len(ds))
	for i, d := range ds {
		ms[i] = ToModelCustomer(d)
	}
	return ms
}

// ToDomainCustomers converts a slice of persisted customers.
func ToDomainCustomers(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}

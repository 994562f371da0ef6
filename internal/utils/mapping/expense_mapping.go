package mapping

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
)

// ToModelExpense converts a domain expense to its persisted shape.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ID:          d.ExpenseID,
		Date:        d.Date,
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
		PayeeID:     d.PayeeID,
		Type:        string(d.Type),
	}
}

// ToDomainExpense converts a persisted expense back to the domain shape.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ID,
		Date:        m.Date,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		PayeeID:     m.PayeeID,
		Type:        domain.ExpenseType(m.Type),
	}
}

// ToModelExpenses converts a slice of domain expenses.
func ToModelExpenses(ds []domain.Expense) []models.Expense {
	ms := make([]models.Expense, len(ds))
	for i, d := range ds {
		ms[i] = ToModelExpense(d)
	}
	return ms
}

// ToDomainExpenses converts a slice of persisted expenses.
func ToDomainExpenses(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

package dto

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
// PayeeID is optional: entries without it are general cash costs. The
// category of PAYMENT entries is forced to "Payment" regardless of input.
type CreateExpenseRequest struct {
	Date        string             `json:"date" binding:"required,datetime=2006-01-02"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Amount      decimal.Decimal    `json:"amount" binding:"required"`
	PayeeID     string             `json:"payeeID"`
	Type        domain.ExpenseType `json:"type" binding:"required,oneof=INVOICE PAYMENT"`
}

// ExpenseResponse defines the data returned for an expense. PayeeName resolves
// the reference for display and falls back to "General / Cash".
type ExpenseResponse struct {
	ExpenseID   string             `json:"expenseID"`
	Date        string             `json:"date"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Amount      decimal.Decimal    `json:"amount"`
	PayeeID     string             `json:"payeeID,omitempty"`
	PayeeName   string             `json:"payeeName"`
	Type        domain.ExpenseType `json:"type"`
}

// ToExpenseResponse converts a domain.Expense, resolving the payee name from
// the given lookup (nil-safe: unknown ids render the general placeholder).
func ToExpenseResponse(e *domain.Expense, payeeNames map[string]string) ExpenseResponse {
	name, ok := payeeNames[e.PayeeID]
	if !ok || e.PayeeID == "" {
		name = domain.GeneralPayeeName
	}
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Date:        e.Date,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		PayeeID:     e.PayeeID,
		PayeeName:   name,
		Type:        e.Type,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense.
func ToListExpenseResponse(expenses []domain.Expense, payeeNames map[string]string) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e, payeeNames)
	}
	return res
}

// ExpenseCategoriesResponse lists the suggested categories.
type ExpenseCategoriesResponse struct {
	Categories []string `json:"categories"`
}

package domain

import "github.com/shopspring/decimal"

// ExpenseType indicates the direction of an expense against a payee.
type ExpenseType string

const (
	Invoice ExpenseType = "INVOICE" // New cost: increases what the farm owes the payee
	Payment ExpenseType = "PAYMENT" // Settlement: decreases it, not a new cost
)

// Expense is a dated financial movement against an optional payee.
// Entries without a PayeeID are general cash costs. PAYMENT entries settle an
// existing payable and are excluded from operating-expense totals.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	Date        string          `json:"date"`      // ISO day (YYYY-MM-DD)
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PayeeID     string          `json:"payeeID"` // Reference, not ownership; empty for general cash
	Type        ExpenseType     `json:"type"`
}

// PaymentCategory is the category recorded for PAYMENT-type expenses.
const PaymentCategory = "Payment"

// SuggestedExpenseCategories is the suggested (not enforced) category list.
var SuggestedExpenseCategories = []string{
	"Feed",
	"Medicine",
	"Maintenance",
	"Salaries",
	"Utilities",
	"Transport",
	"Other",
}

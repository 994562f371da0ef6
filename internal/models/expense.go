package models

import "github.com/shopspring/decimal"

// Expense is the persisted shape inside the expenses collection snapshot.
type Expense struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PayeeID     string          `json:"payeeId,omitempty"`
	Type        string          `json:"type"`
}

package models

import "github.com/shopspring/decimal"

// LedgerEntry is the persisted shape inside the ledger collection snapshot.
// Quantity and PricePerUnit are pointers so absent optionals round-trip as
// absent instead of zero.
type LedgerEntry struct {
	ID           string           `json:"id"`
	CustomerID   string           `json:"customerId"`
	Date         string           `json:"date"`
	Description  string           `json:"description"`
	Type         string           `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	Quantity     *int64           `json:"quantity,omitempty"`
	PricePerUnit *decimal.Decimal `json:"pricePerUnit,omitempty"`
}

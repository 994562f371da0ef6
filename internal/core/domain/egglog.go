package domain

import "github.com/shopspring/decimal"

// EggLog represents one production/sale record. Logs are either recorded manually
// (collected eggs, possibly sold for cash) or generated from a DEBIT ledger entry,
// in which case LedgerID carries the back-reference to the owning entry.
type EggLog struct {
	EggLogID       string          `json:"eggLogID"` // Primary Key (UUID)
	LedgerID       string          `json:"ledgerID"` // Empty for manual logs
	Date           string          `json:"date"`     // ISO day (YYYY-MM-DD), string-sortable
	CollectedCount int64           `json:"collectedCount"`
	SoldCount      int64           `json:"soldCount"`
	SalePrice      decimal.Decimal `json:"salePrice"` // Price per egg
	TotalSale      decimal.Decimal `json:"totalSale"`
}

// IsGenerated reports whether this log was auto-created from a ledger entry.
// Generated logs always have CollectedCount == 0 and mirror the entry's
// quantity/amount in SoldCount/TotalSale.
func (l EggLog) IsGenerated() bool {
	return l.LedgerID != ""
}

package models

import "github.com/shopspring/decimal"

// EggLog is the persisted shape of an egg log inside the eggLogs collection
// snapshot. Field names match the interchange format, so backup documents and
// stored payloads stay byte-compatible.
type EggLog struct {
	ID             string          `json:"id"`
	LedgerID       string          `json:"ledgerId,omitempty"`
	Date           string          `json:"date"`
	CollectedCount int64           `json:"collectedCount"`
	SoldCount      int64           `json:"soldCount"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	TotalSale      decimal.Decimal `json:"totalSale"`
}

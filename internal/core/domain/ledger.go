package domain

import "github.com/shopspring/decimal"

// EntryType indicates the direction of a ledger entry against a customer.
type EntryType string

const (
	Debit  EntryType = "DEBIT"  // Sale: increases what the customer owes
	Credit EntryType = "CREDIT" // Payment received: decreases it
)

// LedgerEntry is a dated financial movement against a customer.
// Amount is always non-negative; the direction is carried by Type.
// Quantity and PricePerUnit are optional (zero means absent). When both are
// present Amount should equal Quantity*PricePerUnit, but Amount stays
// authoritative and mismatches are accepted.
type LedgerEntry struct {
	LedgerEntryID string          `json:"ledgerEntryID"` // Primary Key (UUID)
	CustomerID    string          `json:"customerID"`    // Reference, not ownership
	Date          string          `json:"date"`          // ISO day (YYYY-MM-DD)
	Description   string          `json:"description"`
	Type          EntryType       `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Quantity      int64           `json:"quantity"`     // Eggs sold; 0 when absent
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"` // 0 when absent
}

// GeneratesEggLog reports whether creating this entry must also create a
// linked egg log: only DEBIT entries carrying a positive quantity do.
func (e LedgerEntry) GeneratesEggLog() bool {
	return e.Type == Debit && e.Quantity > 0
}

// GeneratedEggLog builds the egg log mirrored from this entry. The caller
// supplies the new log's ID. Collected is always zero for generated logs.
func (e LedgerEntry) GeneratedEggLog(eggLogID string) EggLog {
	return EggLog{
		EggLogID:       eggLogID,
		LedgerID:       e.LedgerEntryID,
		Date:           e.Date,
		CollectedCount: 0,
		SoldCount:      e.Quantity,
		SalePrice:      e.PricePerUnit,
		TotalSale:      e.Amount,
	}
}

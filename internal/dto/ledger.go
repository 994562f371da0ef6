package dto

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to record a ledger entry.
// Quantity/PricePerUnit are optional; pointers distinguish absent from zero.
// Amount stays authoritative even when it disagrees with quantity*price.
type CreateLedgerEntryRequest struct {
	CustomerID   string           `json:"customerID" binding:"required"`
	Date         string           `json:"date" binding:"required,datetime=2006-01-02"`
	Description  string           `json:"description"`
	Type         domain.EntryType `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
	Quantity     *int64           `json:"quantity" binding:"omitempty,min=1"`
	PricePerUnit *decimal.Decimal `json:"pricePerUnit"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	LedgerEntryID string           `json:"ledgerEntryID"`
	CustomerID    string           `json:"customerID"`
	Date          string           `json:"date"`
	Description   string           `json:"description"`
	Type          domain.EntryType `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	Quantity      int64            `json:"quantity,omitempty"`
	PricePerUnit  decimal.Decimal  `json:"pricePerUnit,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		LedgerEntryID: e.LedgerEntryID,
		CustomerID:    e.CustomerID,
		Date:          e.Date,
		Description:   e.Description,
		Type:          e.Type,
		Amount:        e.Amount,
		Quantity:      e.Quantity,
		PricePerUnit:  e.PricePerUnit,
	}
}

// ToListLedgerEntryResponse converts a slice of domain.LedgerEntry.
func ToListLedgerEntryResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToLedgerEntryResponse(&e)
	}
	return res
}

// CreateLedgerEntryResponse returns the new entry plus the egg log the link
// manager generated for it, when the entry was a DEBIT sale with a quantity.
type CreateLedgerEntryResponse struct {
	Entry           LedgerEntryResponse `json:"entry"`
	GeneratedEggLog *EggLogResponse     `json:"generatedEggLog,omitempty"`
}

// LedgerLineResponse is one statement row: the entry and the customer's
// cumulative balance as of that entry.
type LedgerLineResponse struct {
	LedgerEntryResponse
	Balance decimal.Decimal `json:"balance"`
}

// ToLedgerLineResponses converts domain ledger lines to statement rows.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	res := make([]LedgerLineResponse, len(lines))
	for i, l := range lines {
		res[i] = LedgerLineResponse{
			LedgerEntryResponse: ToLedgerEntryResponse(&l.Entry),
			Balance:             l.Balance,
		}
	}
	return res
}

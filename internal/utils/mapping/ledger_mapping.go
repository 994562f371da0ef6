package mapping

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelLedgerEntry converts a domain ledger entry to its persisted shape.
// Zero-valued optionals are stored as absent.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		ID:          d.LedgerEntryID,
		CustomerID:  d.CustomerID,
		Date:        d.Date,
		Description: d.Description,
		Type:        string(d.Type),
		Amount:      d.Amount,
	}
	if d.Quantity > 0 {
		qty := d.Quantity
		m.Quantity = &qty
	}
	if d.PricePerUnit.IsPositive() {
		price := d.PricePerUnit
		m.PricePerUnit = &price
	}
	return m
}

// ToDomainLedgerEntry converts a persisted ledger entry back to the domain
// shape. Absent optionals become zero.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		LedgerEntryID: m.ID,
		CustomerID:    m.CustomerID,
		Date:          m.Date,
		Description:   m.Description,
		Type:          domain.EntryType(m.Type),
		Amount:        m.Amount,
		PricePerUnit:  decimal.Zero,
	}
	if m.Quantity != nil {
		d.Quantity = *m.Quantity
	}
	if m.PricePerUnit != nil {
		d.PricePerUnit = *m.PricePerUnit
	}
	return d
}

// ToModelLedgerEntries converts a slice of domain ledger entries.
func ToModelLedgerEntries(ds []domain.LedgerEntry) []models.LedgerEntry {
	ms := make([]models.LedgerEntry, len(ds))
	for i, d := range ds {
		ms[i] = ToModelLedgerEntry(d)
	}
	return ms
}

// ToDomainLedgerEntries converts a slice of persisted ledger entries.
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

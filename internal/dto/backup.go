package dto

import "github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"

// BackupVersion is the full-backup document version written on export.
const BackupVersion = "1.0"

// BackupData carries all five collections in their persisted shapes, so a
// restore reproduces field values byte-identically.
type BackupData struct {
	EggLogs   []models.EggLog      `json:"eggLogs"`
	Customers []models.Customer    `json:"customers"`
	Ledger    []models.LedgerEntry `json:"ledger"`
	Expenses  []models.Expense     `json:"expenses"`
	Payees    []models.Payee       `json:"payees"`
}

// BackupDocument is the full-backup interchange document.
type BackupDocument struct {
	Version   string     `json:"version"`
	Timestamp string     `json:"timestamp"`
	Data      BackupData `json:"data"`
}

// ImportResultResponse reports how many rows a tabular import accepted.
type ImportResultResponse struct {
	Collection string `json:"collection"`
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
}

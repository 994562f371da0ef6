package repositories

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
)

// Every collection follows the same snapshot contract: List returns the full
// collection (empty, never an error surface, when storage is missing or
// corrupt), and every mutation persists the whole resulting collection.
// Cross-collection references are not validated here.

// EggLogRepository stores the eggLogs collection.
type EggLogRepository interface {
	List(ctx context.Context) ([]domain.EggLog, error)
	ReplaceAll(ctx context.Context, logs []domain.EggLog) error
	Append(ctx context.Context, log domain.EggLog) error
	RemoveByID(ctx context.Context, eggLogID string) error
}

// CustomerRepository stores the customers collection.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	ReplaceAll(ctx context.Context, customers []domain.Customer) error
	Append(ctx context.Context, customer domain.Customer) error
	RemoveByID(ctx context.Context, customerID string) error
}

// LedgerRepository stores the ledger collection.
type LedgerRepository interface {
	List(ctx context.Context) ([]domain.LedgerEntry, error)
	ReplaceAll(ctx context.Context, entries []domain.LedgerEntry) error
	Append(ctx context.Context, entry domain.LedgerEntry) error
	RemoveByID(ctx context.Context, ledgerEntryID string) error
}

// ExpenseRepository stores the expenses collection.
type ExpenseRepository interface {
	List(ctx context.Context) ([]domain.Expense, error)
	ReplaceAll(ctx context.Context, expenses []domain.Expense) error
	Append(ctx context.Context, expense domain.Expense) error
	RemoveByID(ctx context.Context, expenseID string) error
}

// PayeeRepository stores the payees collection.
type PayeeRepository interface {
	List(ctx context.Context) ([]domain.Payee, error)
	ReplaceAll(ctx context.Context, payees []domain.Payee) error
	Append(ctx context.Context, payee domain.Payee) error
	RemoveByID(ctx context.Context, payeeID string) error
}

// SettingsRepository stores the settings singleton. Get returns the defaults
// when nothing has been saved yet.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.FarmSettings, error)
	Save(ctx context.Context, settings domain.FarmSettings) error
}

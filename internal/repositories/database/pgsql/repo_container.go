package pgsql

import (
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every collection repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EggLogRepo:   newPgxEggLogRepository(pool),
		CustomerRepo: newPgxCustomerRepository(pool),
		LedgerRepo:   newPgxLedgerRepository(pool),
		ExpenseRepo:  newPgxExpenseRepository(pool),
		PayeeRepo:    newPgxPayeeRepository(pool),
		SettingsRepo: newPgxSettingsRepository(pool),
	}
}

package services

import (
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		EggLog:   NewEggLogService(repos.EggLogRepo),
		Customer: NewCustomerService(repos.CustomerRepo, repos.LedgerRepo),
		Ledger:   NewLedgerService(repos.LedgerRepo, repos.EggLogRepo, repos.CustomerRepo),
		Expense:  NewExpenseService(repos.ExpenseRepo),
		Payee:    NewPayeeService(repos.PayeeRepo),
		Settings: NewSettingsService(repos.SettingsRepo),
		Reporting: NewReportingService(
			repos.EggLogRepo, repos.CustomerRepo, repos.LedgerRepo, repos.ExpenseRepo, repos.PayeeRepo),
		Backup: NewBackupService(
			repos.EggLogRepo, repos.CustomerRepo, repos.LedgerRepo, repos.ExpenseRepo, repos.PayeeRepo),
	}
}

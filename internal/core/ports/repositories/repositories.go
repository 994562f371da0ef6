package repositories

// RepositoryProvider aggregates every repository the service layer needs.
type RepositoryProvider struct {
	EggLogRepo   EggLogRepository
	CustomerRepo CustomerRepository
	LedgerRepo   LedgerRepository
	ExpenseRepo  ExpenseRepository
	PayeeRepo    PayeeRepository
	SettingsRepo SettingsRepository
}

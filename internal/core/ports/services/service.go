package services

// ServiceContainer aggregates every service facade for route registration.
type ServiceContainer struct {
	EggLog    EggLogSvcFacade
	Customer  CustomerSvcFacade
	Ledger    LedgerSvcFacade
	Expense   ExpenseSvcFacade
	Payee     PayeeSvcFacade
	Settings  SettingsSvcFacade
	Reporting ReportingSvcFacade
	Backup    BackupSvcFacade
}

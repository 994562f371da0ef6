package services

import (
	"context"
	"fmt"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
)

// reportingService computes the derived financial views. Each call loads the
// collections it needs and folds them; there is no report state to invalidate.
type reportingService struct {
	eggLogRepo   portsrepo.EggLogRepository
	customerRepo portsrepo.CustomerRepository
	ledgerRepo   portsrepo.LedgerRepository
	expenseRepo  portsrepo.ExpenseRepository
	payeeRepo    portsrepo.PayeeRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	eggLogRepo portsrepo.EggLogRepository,
	customerRepo portsrepo.CustomerRepository,
	ledgerRepo portsrepo.LedgerRepository,
	expenseRepo portsrepo.ExpenseRepository,
	payeeRepo portsrepo.PayeeRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		eggLogRepo:   eggLogRepo,
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
		expenseRepo:  expenseRepo,
		payeeRepo:    payeeRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) BalanceSheet(ctx context.Context) (domain.BalanceSheet, error) {
	eggLogs, err := s.eggLogRepo.List(ctx)
	if err != nil {
		return domain.BalanceSheet{}, fmt.Errorf("failed to load egg logs: %w", err)
	}
	ledger, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return domain.BalanceSheet{}, fmt.Errorf("failed to load ledger: %w", err)
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return domain.BalanceSheet{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	return domain.BuildBalanceSheet(eggLogs, ledger, expenses), nil
}

func (s *reportingService) Outstanding(ctx context.Context) (domain.OutstandingReport, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return domain.OutstandingReport{}, fmt.Errorf("failed to load customers: %w", err)
	}
	ledger, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return domain.OutstandingReport{}, fmt.Errorf("failed to load ledger: %w", err)
	}
	payees, err := s.payeeRepo.List(ctx)
	if err != nil {
		return domain.OutstandingReport{}, fmt.Errorf("failed to load payees: %w", err)
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return domain.OutstandingReport{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	return domain.BuildOutstanding(customers, ledger, payees, expenses), nil
}

func (s *reportingService) ChartData(ctx context.Context) ([]domain.ChartPoint, error) {
	eggLogs, err := s.eggLogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load egg logs: %w", err)
	}
	ledger, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return domain.BuildChartData(eggLogs, ledger, expenses), nil
}

func (s *reportingService) DayOverview(ctx context.Context, date string) (domain.DailyOverview, error) {
	eggLogs, err := s.eggLogRepo.List(ctx)
	if err != nil {
		return domain.DailyOverview{}, fmt.Errorf("failed to load egg logs: %w", err)
	}
	ledger, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return domain.DailyOverview{}, fmt.Errorf("failed to load ledger: %w", err)
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return domain.DailyOverview{}, fmt.Errorf("failed to load customers: %w", err)
	}
	payees, err := s.payeeRepo.List(ctx)
	if err != nil {
		return domain.DailyOverview{}, fmt.Errorf("failed to load payees: %w", err)
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return domain.DailyOverview{}, fmt.Errorf("failed to load expenses: %w", err)
	}

	records := domain.BuildDayRecords(date, eggLogs, ledger, customers, payees, expenses)
	totalIn, totalOut := domain.DayFlowTotals(records)
	return domain.DailyOverview{
		Date:      date,
		Records:   records,
		TotalIn:   totalIn,
		TotalOut:  totalOut,
		Inventory: domain.InventoryStatsFor(eggLogs, date),
	}, nil
}

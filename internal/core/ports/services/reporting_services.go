package services

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
)

// ReportingSvcFacade exposes the derived financial views. Every call
// recomputes from full collection snapshots; nothing is cached.
type ReportingSvcFacade interface {
	// BalanceSheet aggregates daily sales/expenses with grand totals.
	BalanceSheet(ctx context.Context) (domain.BalanceSheet, error)

	// Outstanding rolls up non-zero customer and payee balances.
	Outstanding(ctx context.Context) (domain.OutstandingReport, error)

	// ChartData returns per-day dashboard points in ascending date order.
	ChartData(ctx context.Context) ([]domain.ChartPoint, error)

	// DayOverview returns the detailed movement list for one date.
	DayOverview(ctx context.Context, date string) (domain.DailyOverview, error)
}

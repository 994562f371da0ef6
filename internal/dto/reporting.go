package dto

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/utils"
	"github.com/shopspring/decimal"
)

// DailySummaryResponse is one balance-sheet row.
type DailySummaryResponse struct {
	Date         string          `json:"date"`
	GeneralSales decimal.Decimal `json:"generalSales"`
	LedgerSales  decimal.Decimal `json:"ledgerSales"`
	TotalSale    decimal.Decimal `json:"totalSale"`
	Expense      decimal.Decimal `json:"expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// BalanceSheetResponse is the full daily breakdown plus grand totals.
type BalanceSheetResponse struct {
	Days                 []DailySummaryResponse `json:"days"`
	TotalGeneralSales    decimal.Decimal        `json:"totalGeneralSales"`
	TotalLedgerSales     decimal.Decimal        `json:"totalLedgerSales"`
	TotalSales           decimal.Decimal        `json:"totalSales"`
	TotalExpenses        decimal.Decimal        `json:"totalExpenses"`
	NetBalance           decimal.Decimal        `json:"netBalance"`
	DisplayTotalSales    string                 `json:"displayTotalSales"`
	DisplayTotalExpenses string                 `json:"displayTotalExpenses"`
	DisplayNetBalance    string                 `json:"displayNetBalance"`
}

// ToBalanceSheetResponse converts a domain.BalanceSheet.
func ToBalanceSheetResponse(s domain.BalanceSheet) BalanceSheetResponse {
	days := make([]DailySummaryResponse, len(s.Days))
	for i, d := range s.Days {
		days[i] = DailySummaryResponse{
			Date:         d.Date,
			GeneralSales: d.GeneralSales,
			LedgerSales:  d.LedgerSales,
			TotalSale:    d.TotalSale,
			Expense:      d.Expense,
			Balance:      d.Balance,
		}
	}
	return BalanceSheetResponse{
		Days:                 days,
		TotalGeneralSales:    s.TotalGeneralSales,
		TotalLedgerSales:     s.TotalLedgerSales,
		TotalSales:           s.TotalSales,
		TotalExpenses:        s.TotalExpenses,
		NetBalance:           s.NetBalance,
		DisplayTotalSales:    utils.FormatPKR(s.TotalSales),
		DisplayTotalExpenses: utils.FormatPKR(s.TotalExpenses),
		DisplayNetBalance:    utils.FormatPKR(s.NetBalance),
	}
}

// OutstandingEntryResponse is one non-zero entity balance.
type OutstandingEntryResponse struct {
	EntityID       string          `json:"entityID"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Type           string          `json:"type"`
	Balance        decimal.Decimal `json:"balance"`
	DisplayBalance string          `json:"displayBalance"`
	LastActive     string          `json:"lastActive"`
}

// OutstandingResponse is the payables/receivables roll-up.
type OutstandingResponse struct {
	TotalReceivables   decimal.Decimal            `json:"totalReceivables"`
	TotalPayables      decimal.Decimal            `json:"totalPayables"`
	DisplayReceivables string                     `json:"displayReceivables"`
	DisplayPayables    string                     `json:"displayPayables"`
	Entries            []OutstandingEntryResponse `json:"entries"`
}

// ToOutstandingResponse converts a domain.OutstandingReport.
func ToOutstandingResponse(r domain.OutstandingReport) OutstandingResponse {
	entries := make([]OutstandingEntryResponse, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = OutstandingEntryResponse{
			EntityID:       e.EntityID,
			Name:           e.Name,
			Phone:          e.Phone,
			Type:           e.Type,
			Balance:        e.Balance,
			DisplayBalance: utils.FormatPKR(e.Balance),
			LastActive:     e.LastActive,
		}
	}
	return OutstandingResponse{
		TotalReceivables:   r.TotalReceivables,
		TotalPayables:      r.TotalPayables,
		DisplayReceivables: utils.FormatPKR(r.TotalReceivables),
		DisplayPayables:    utils.FormatPKR(r.TotalPayables),
		Entries:            entries,
	}
}

// ChartPointResponse is one dashboard chart data point.
type ChartPointResponse struct {
	Date      string          `json:"date"`
	Collected int64           `json:"collected"`
	Sales     decimal.Decimal `json:"sales"`
	Expense   decimal.Decimal `json:"expense"`
}

// DayRecordResponse is one money/stock movement on the selected day.
type DayRecordResponse struct {
	RecordID    string          `json:"recordID"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	Entity      string          `json:"entity"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Flow        string          `json:"flow"`
}

// OverviewResponse is the dashboard payload: chart points across all dates and
// the detailed breakdown for the selected date.
type OverviewResponse struct {
	Chart     []ChartPointResponse   `json:"chart"`
	Date      string                 `json:"date"`
	Records   []DayRecordResponse    `json:"records"`
	TotalIn   decimal.Decimal        `json:"totalIn"`
	TotalOut  decimal.Decimal        `json:"totalOut"`
	Inventory InventoryStatsResponse `json:"inventory"`
}

// ToOverviewResponse assembles the dashboard payload.
func ToOverviewResponse(chart []domain.ChartPoint, day domain.DailyOverview) OverviewResponse {
	chartRes := make([]ChartPointResponse, len(chart))
	for i, p := range chart {
		chartRes[i] = ChartPointResponse{
			Date:      p.Date,
			Collected: p.Collected,
			Sales:     p.Sales,
			Expense:   p.Expense,
		}
	}
	records := make([]DayRecordResponse, len(day.Records))
	for i, r := range day.Records {
		records[i] = DayRecordResponse{
			RecordID:    r.RecordID,
			Kind:        r.Kind,
			Category:    r.Category,
			Entity:      r.Entity,
			Description: r.Description,
			Amount:      r.Amount,
			Flow:        string(r.Flow),
		}
	}
	return OverviewResponse{
		Chart:     chartRes,
		Date:      day.Date,
		Records:   records,
		TotalIn:   day.TotalIn,
		TotalOut:  day.TotalOut,
		Inventory: ToInventoryStatsResponse(day.Date, day.Inventory),
	}
}

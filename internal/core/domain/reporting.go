package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// NoActivity is the LastActive sentinel for entities without transactions.
const NoActivity = "N/A"

// Everything in this file is a pure derivation over full collection snapshots.
// Nothing is cached: callers recompute on every read, which is fine at the
// data volumes of a single farm (low thousands of rows).

// LedgerLine pairs a ledger entry with the customer's cumulative balance as of
// that entry, in date order.
type LedgerLine struct {
	Entry   LedgerEntry
	Balance decimal.Decimal
}

// CustomerRunningBalance filters entries for one customer, sorts them by date
// (stable, insertion order preserved within a day) and folds DEBIT as +amount,
// CREDIT as -amount. It returns every line with its cumulative balance plus
// the final balance: positive means the customer owes the farm, negative means
// the farm holds an advance.
func CustomerRunningBalance(entries []LedgerEntry, customerID string) ([]LedgerLine, decimal.Decimal) {
	var filtered []LedgerEntry
	for _, e := range entries {
		if e.CustomerID == customerID {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })

	lines := make([]LedgerLine, len(filtered))
	balance := decimal.Zero
	for i, e := range filtered {
		if e.Type == Debit {
			balance = balance.Add(e.Amount)
		} else {
			balance = balance.Sub(e.Amount)
		}
		lines[i] = LedgerLine{Entry: e, Balance: balance}
	}
	return lines, balance
}

// PayeeBalance folds expenses for one payee: non-PAYMENT entries add (new
// payables), PAYMENT entries subtract (settlements). Positive means the farm
// owes the payee.
func PayeeBalance(expenses []Expense, payeeID string) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range expenses {
		if e.PayeeID != payeeID {
			continue
		}
		if e.Type == Payment {
			balance = balance.Sub(e.Amount)
		} else {
			balance = balance.Add(e.Amount)
		}
	}
	return balance
}

// CustomerEntityType tags customer rows in the outstanding report; payee rows
// carry the payee's own free-form type.
const CustomerEntityType = "CUSTOMER"

// OutstandingEntry is one non-zero balance in the outstanding report.
type OutstandingEntry struct {
	EntityID   string
	Name       string
	Phone      string
	Type       string
	Balance    decimal.Decimal
	LastActive string // Latest transaction date, or NoActivity
}

// OutstandingReport is the payables/receivables roll-up across all customers
// and payees. Entities with a balance of exactly zero are excluded.
type OutstandingReport struct {
	TotalReceivables decimal.Decimal // Sum of positive customer balances
	TotalPayables    decimal.Decimal // Customer advances + positive payee balances
	Entries          []OutstandingEntry
}

// BuildOutstanding computes the outstanding-balances report. Entries are
// ordered by balance magnitude, largest first.
func BuildOutstanding(customers []Customer, ledger []LedgerEntry, payees []Payee, expenses []Expense) OutstandingReport {
	report := OutstandingReport{
		TotalReceivables: decimal.Zero,
		TotalPayables:    decimal.Zero,
	}

	for _, c := range customers {
		_, balance := CustomerRunningBalance(ledger, c.CustomerID)
		if balance.IsZero() {
			continue
		}
		lastActive := NoActivity
		for _, e := range ledger {
			if e.CustomerID == c.CustomerID && (lastActive == NoActivity || e.Date > lastActive) {
				lastActive = e.Date
			}
		}
		report.Entries = append(report.Entries, OutstandingEntry{
			EntityID:   c.CustomerID,
			Name:       c.Name,
			Phone:      c.Phone,
			Type:       CustomerEntityType,
			Balance:    balance,
			LastActive: lastActive,
		})
		if balance.IsPositive() {
			report.TotalReceivables = report.TotalReceivables.Add(balance)
		} else {
			// Advance held for the customer counts as a payable.
			report.TotalPayables = report.TotalPayables.Add(balance.Abs())
		}
	}

	for _, p := range payees {
		balance := PayeeBalance(expenses, p.PayeeID)
		if balance.IsZero() {
			continue
		}
		lastActive := NoActivity
		for _, e := range expenses {
			if e.PayeeID == p.PayeeID && (lastActive == NoActivity || e.Date > lastActive) {
				lastActive = e.Date
			}
		}
		report.Entries = append(report.Entries, OutstandingEntry{
			EntityID:   p.PayeeID,
			Name:       p.Name,
			Phone:      p.Phone,
			Type:       p.Type,
			Balance:    balance,
			LastActive: lastActive,
		})
		if balance.IsPositive() {
			report.TotalPayables = report.TotalPayables.Add(balance)
		}
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].Balance.Abs().GreaterThan(report.Entries[j].Balance.Abs())
	})
	return report
}

// DailySummary is one balance-sheet row. GeneralSales counts only manual egg
// logs; logs generated from a ledger entry are excluded so a DEBIT sale is
// never counted twice.
type DailySummary struct {
	Date         string
	GeneralSales decimal.Decimal
	LedgerSales  decimal.Decimal
	TotalSale    decimal.Decimal
	Expense      decimal.Decimal
	Balance      decimal.Decimal
}

// BalanceSheet is the daily breakdown plus grand totals.
type BalanceSheet struct {
	Days              []DailySummary // Most recent date first
	TotalGeneralSales decimal.Decimal
	TotalLedgerSales  decimal.Decimal
	TotalSales        decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetBalance        decimal.Decimal
}

// BuildBalanceSheet aggregates sales and expenses per day across the union of
// all dates seen in egg logs, ledger entries and expenses. PAYMENT expenses
// settle a payable and are not a new cost, so they are excluded.
func BuildBalanceSheet(eggLogs []EggLog, ledger []LedgerEntry, expenses []Expense) BalanceSheet {
	dates := dateUnion(eggLogs, ledger, expenses)
	// Most recent first, matching how the books are read.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	sheet := BalanceSheet{
		TotalGeneralSales: decimal.Zero,
		TotalLedgerSales:  decimal.Zero,
		TotalSales:        decimal.Zero,
		TotalExpenses:     decimal.Zero,
		NetBalance:        decimal.Zero,
	}
	for _, date := range dates {
		day := DailySummary{
			Date:         date,
			GeneralSales: decimal.Zero,
			LedgerSales:  decimal.Zero,
			Expense:      decimal.Zero,
		}
		for _, l := range eggLogs {
			if l.Date == date && !l.IsGenerated() {
				day.GeneralSales = day.GeneralSales.Add(l.TotalSale)
			}
		}
		for _, e := range ledger {
			if e.Date == date && e.Type == Debit {
				day.LedgerSales = day.LedgerSales.Add(e.Amount)
			}
		}
		for _, e := range expenses {
			if e.Date == date && e.Type != Payment {
				day.Expense = day.Expense.Add(e.Amount)
			}
		}
		day.TotalSale = day.GeneralSales.Add(day.LedgerSales)
		day.Balance = day.TotalSale.Sub(day.Expense)
		sheet.Days = append(sheet.Days, day)

		sheet.TotalGeneralSales = sheet.TotalGeneralSales.Add(day.GeneralSales)
		sheet.TotalLedgerSales = sheet.TotalLedgerSales.Add(day.LedgerSales)
		sheet.TotalExpenses = sheet.TotalExpenses.Add(day.Expense)
	}
	sheet.TotalSales = sheet.TotalGeneralSales.Add(sheet.TotalLedgerSales)
	sheet.NetBalance = sheet.TotalSales.Sub(sheet.TotalExpenses)
	return sheet
}

// CurrentInventory is total collected minus total sold across all egg logs.
// Sold counts from ledger-generated logs subtract from stock like any other.
func CurrentInventory(eggLogs []EggLog) int64 {
	var collected, sold int64
	for _, l := range eggLogs {
		collected += l.CollectedCount
		sold += l.SoldCount
	}
	return collected - sold
}

// InventoryStats is the stock movement around one target date.
type InventoryStats struct {
	OpeningInventory int64 // Stock accumulated strictly before the date
	ClosingInventory int64 // Opening plus the day's delta
	TodayCollected   int64
	TodaySold        int64
}

// InventoryStatsFor computes opening/closing inventory for a target date using
// the collected-minus-sold fold, with lexicographic ISO date comparison.
func InventoryStatsFor(eggLogs []EggLog, date string) InventoryStats {
	var openingCollected, openingSold int64
	var stats InventoryStats
	for _, l := range eggLogs {
		switch {
		case l.Date < date:
			openingCollected += l.CollectedCount
			openingSold += l.SoldCount
		case l.Date == date:
			stats.TodayCollected += l.CollectedCount
			stats.TodaySold += l.SoldCount
		}
	}
	stats.OpeningInventory = openingCollected - openingSold
	stats.ClosingInventory = stats.OpeningInventory + (stats.TodayCollected - stats.TodaySold)
	return stats
}

// ChartPoint is one dashboard data point: eggs collected and money moved on a day.
type ChartPoint struct {
	Date      string
	Collected int64
	Sales     decimal.Decimal // General + ledger sales, no double counting
	Expense   decimal.Decimal // PAYMENT entries excluded
}

// BuildChartData produces per-day dashboard points in ascending date order.
func BuildChartData(eggLogs []EggLog, ledger []LedgerEntry, expenses []Expense) []ChartPoint {
	dates := dateUnion(eggLogs, ledger, expenses)
	sort.Strings(dates)

	points := make([]ChartPoint, 0, len(dates))
	for _, date := range dates {
		point := ChartPoint{Date: date, Sales: decimal.Zero, Expense: decimal.Zero}
		for _, l := range eggLogs {
			if l.Date != date {
				continue
			}
			point.Collected += l.CollectedCount
			if !l.IsGenerated() {
				point.Sales = point.Sales.Add(l.TotalSale)
			}
		}
		for _, e := range ledger {
			if e.Date == date && e.Type == Debit {
				point.Sales = point.Sales.Add(e.Amount)
			}
		}
		for _, e := range expenses {
			if e.Date == date && e.Type != Payment {
				point.Expense = point.Expense.Add(e.Amount)
			}
		}
		points = append(points, point)
	}
	return points
}

// FlowDirection classifies a day record's effect on cash.
type FlowDirection string

const (
	FlowIn      FlowDirection = "IN"
	FlowOut     FlowDirection = "OUT"
	FlowNeutral FlowDirection = "NEUTRAL"
)

// DayRecord is one money or stock movement on a given day, with references
// resolved to display names ("Unknown Customer", "General / Cash" for
// dangling or absent references).
type DayRecord struct {
	RecordID    string
	Kind        string
	Category    string
	Entity      string
	Description string
	Amount      decimal.Decimal
	Flow        FlowDirection
}

// BuildDayRecords lists every movement on one date: manual egg logs as cash
// sales, generated logs as collection-only records, ledger entries as sales or
// received payments, expenses as outflow.
func BuildDayRecords(date string, eggLogs []EggLog, ledger []LedgerEntry, customers []Customer, payees []Payee, expenses []Expense) []DayRecord {
	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.CustomerID] = c.Name
	}
	payeeNames := make(map[string]string, len(payees))
	for _, p := range payees {
		payeeNames[p.PayeeID] = p.Name
	}

	var records []DayRecord
	for _, l := range eggLogs {
		if l.Date != date {
			continue
		}
		if l.IsGenerated() {
			records = append(records, DayRecord{
				RecordID:    "egg-" + l.EggLogID,
				Kind:        "EGG_COLLECTION",
				Category:    "Production",
				Entity:      "Farm",
				Description: fmt.Sprintf("Collected: %d eggs", l.CollectedCount),
				Amount:      decimal.Zero,
				Flow:        FlowNeutral,
			})
		} else {
			records = append(records, DayRecord{
				RecordID:    "egg-" + l.EggLogID,
				Kind:        "EGG_LOG",
				Category:    "Production & Cash Sale",
				Entity:      "General",
				Description: fmt.Sprintf("Collected: %d, Sold: %d @ %s", l.CollectedCount, l.SoldCount, l.SalePrice),
				Amount:      l.TotalSale,
				Flow:        FlowIn,
			})
		}
	}
	for _, e := range ledger {
		if e.Date != date {
			continue
		}
		name, ok := customerNames[e.CustomerID]
		if !ok {
			name = UnknownCustomerName
		}
		kind, category := "PAYMENT_RECEIVED", "Payment Received"
		if e.Type == Debit {
			kind, category = "CREDIT_SALE", "Customer Sale"
		}
		records = append(records, DayRecord{
			RecordID:    "ledger-" + e.LedgerEntryID,
			Kind:        kind,
			Category:    category,
			Entity:      name,
			Description: e.Description,
			Amount:      e.Amount,
			Flow:        FlowIn,
		})
	}
	for _, e := range expenses {
		if e.Date != date {
			continue
		}
		name, ok := payeeNames[e.PayeeID]
		if !ok || e.PayeeID == "" {
			name = GeneralPayeeName
		}
		kind, category := "EXPENSE", "Expense"
		if e.Type == Payment {
			kind, category = "PAYMENT_SENT", "Payment Sent"
		}
		records = append(records, DayRecord{
			RecordID:    "exp-" + e.ExpenseID,
			Kind:        kind,
			Category:    category,
			Entity:      name,
			Description: e.Category + " - " + e.Description,
			Amount:      e.Amount,
			Flow:        FlowOut,
		})
	}
	return records
}

// DailyOverview is the dashboard view for one day: every movement with flow
// totals plus the inventory position.
type DailyOverview struct {
	Date      string
	Records   []DayRecord
	TotalIn   decimal.Decimal
	TotalOut  decimal.Decimal
	Inventory InventoryStats
}

// DayFlowTotals sums IN and OUT amounts over day records.
func DayFlowTotals(records []DayRecord) (totalIn, totalOut decimal.Decimal) {
	totalIn, totalOut = decimal.Zero, decimal.Zero
	for _, r := range records {
		switch r.Flow {
		case FlowIn:
			totalIn = totalIn.Add(r.Amount)
		case FlowOut:
			totalOut = totalOut.Add(r.Amount)
		}
	}
	return totalIn, totalOut
}

func dateUnion(eggLogs []EggLog, ledger []LedgerEntry, expenses []Expense) []string {
	seen := make(map[string]struct{})
	for _, l := range eggLogs {
		seen[l.Date] = struct{}{}
	}
	for _, e := range ledger {
		seen[e.Date] = struct{}{}
	}
	for _, e := range expenses {
		seen[e.Date] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	return dates
}

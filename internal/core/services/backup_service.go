package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/utils/mapping"
)

// backupService provides full-backup and CSV interchange over the collections.
type backupService struct {
	eggLogRepo   portsrepo.EggLogRepository
	customerRepo portsrepo.CustomerRepository
	ledgerRepo   portsrepo.LedgerRepository
	expenseRepo  portsrepo.ExpenseRepository
	payeeRepo    portsrepo.PayeeRepository
}

// NewBackupService creates a new BackupService.
func NewBackupService(
	eggLogRepo portsrepo.EggLogRepository,
	customerRepo portsrepo.CustomerRepository,
	ledgerRepo portsrepo.LedgerRepository,
	expenseRepo portsrepo.ExpenseRepository,
	payeeRepo portsrepo.PayeeRepository,
) portssvc.BackupSvcFacade {
	return &backupService{
		eggLogRepo:   eggLogRepo,
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
		expenseRepo:  expenseRepo,
		payeeRepo:    payeeRepo,
	}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

// ExportBackup snapshots every collection into one versioned document.
func (s *backupService) ExportBackup(ctx context.Context) (*dto.BackupDocument, error) {
	eggLogs, err := s.eggLogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load egg logs: %w", err)
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	ledger, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	payees, err := s.payeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payees: %w", err)
	}

	return &dto.BackupDocument{
		Version:   dto.BackupVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data: dto.BackupData{
			EggLogs:   mapping.ToModelEggLogs(eggLogs),
			Customers: mapping.ToModelCustomers(customers),
			Ledger:    mapping.ToModelLedgerEntries(ledger),
			Expenses:  mapping.ToModelExpenses(expenses),
			Payees:    mapping.ToModelPayees(payees),
		},
	}, nil
}

// RestoreBackup replaces every collection from the document. The three core
// collections must be present; validation happens before any write, so a
// rejected document leaves the store untouched.
func (s *backupService) RestoreBackup(ctx context.Context, data dto.BackupData) error {
	if data.EggLogs == nil || data.Customers == nil || data.Ledger == nil {
		return fmt.Errorf("%w: backup must contain eggLogs, customers and ledger", apperrors.ErrValidation)
	}

	if err := s.eggLogRepo.ReplaceAll(ctx, mapping.ToDomainEggLogs(data.EggLogs)); err != nil {
		return fmt.Errorf("failed to restore egg logs: %w", err)
	}
	if err := s.customerRepo.ReplaceAll(ctx, mapping.ToDomainCustomers(data.Customers)); err != nil {
		return fmt.Errorf("failed to restore customers: %w", err)
	}
	if err := s.ledgerRepo.ReplaceAll(ctx, mapping.ToDomainLedgerEntries(data.Ledger)); err != nil {
		return fmt.Errorf("failed to restore ledger: %w", err)
	}
	if err := s.expenseRepo.ReplaceAll(ctx, mapping.ToDomainExpenses(data.Expenses)); err != nil {
		return fmt.Errorf("failed to restore expenses: %w", err)
	}
	if err := s.payeeRepo.ReplaceAll(ctx, mapping.ToDomainPayees(data.Payees)); err != nil {
		return fmt.Errorf("failed to restore payees: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Backup restored",
		slog.Int("egg_logs", len(data.EggLogs)),
		slog.Int("customers", len(data.Customers)),
		slog.Int("ledger_entries", len(data.Ledger)))
	return nil
}

// ExportCSV renders one collection as header-plus-rows CSV. Reference columns
// (customer, payee) export resolved names, with placeholders for dangling ids.
func (s *backupService) ExportCSV(ctx context.Context, collection string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch collection {
	case portssvc.CollectionEggs:
		logs, err := s.eggLogRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load egg logs: %w", err)
		}
		w.Write([]string{"Date", "Collected", "Sold", "Price", "TotalSale"})
		for _, l := range logs {
			w.Write([]string{
				l.Date,
				strconv.FormatInt(l.CollectedCount, 10),
				strconv.FormatInt(l.SoldCount, 10),
				l.SalePrice.String(),
				l.TotalSale.String(),
			})
		}

	case portssvc.CollectionCustomers:
		customers, err := s.customerRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load customers: %w", err)
		}
		w.Write([]string{"Name", "Phone"})
		for _, c := range customers {
			w.Write([]string{c.Name, c.Phone})
		}

	case portssvc.CollectionLedger:
		entries, err := s.ledgerRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load ledger: %w", err)
		}
		customers, err := s.customerRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load customers: %w", err)
		}
		names := make(map[string]string, len(customers))
		for _, c := range customers {
			names[c.CustomerID] = c.Name
		}
		w.Write([]string{"Date", "Customer", "Type", "Description", "Amount", "Quantity", "PricePerUnit"})
		for _, e := range entries {
			name, ok := names[e.CustomerID]
			if !ok {
				name = "Unknown"
			}
			w.Write([]string{
				e.Date,
				name,
				string(e.Type),
				e.Description,
				e.Amount.String(),
				strconv.FormatInt(e.Quantity, 10),
				e.PricePerUnit.String(),
			})
		}

	case portssvc.CollectionExpenses:
		expenses, err := s.expenseRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load expenses: %w", err)
		}
		payees, err := s.payeeRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load payees: %w", err)
		}
		byID := make(map[string]domain.Payee, len(payees))
		for _, p := range payees {
			byID[p.PayeeID] = p
		}
		w.Write([]string{"Date", "Payee", "PayeeType", "TransactionType", "Category", "Description", "Amount"})
		for _, e := range expenses {
			payeeName, payeeType := "General", "-"
			if p, ok := byID[e.PayeeID]; ok {
				payeeName, payeeType = p.Name, p.Type
			}
			w.Write([]string{
				e.Date,
				payeeName,
				payeeType,
				string(e.Type),
				e.Category,
				e.Description,
				e.Amount.String(),
			})
		}

	case portssvc.CollectionPayees:
		payees, err := s.payeeRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load payees: %w", err)
		}
		w.Write([]string{"Name", "Type", "Phone"})
		for _, p := range payees {
			w.Write([]string{p.Name, p.Type, p.Phone})
		}

	default:
		return nil, fmt.Errorf("%w: unknown collection %q", apperrors.ErrValidation, collection)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportCSV replaces one collection from header-plus-rows CSV. Rows are
// tolerated loosely: unparsable numerics import as zero and short rows are
// skipped. Ledger rows naming unknown customers are skipped; expense rows
// naming unknown payees import as general cash.
func (s *backupService) ImportCSV(ctx context.Context, collection string, r io.Reader) (dto.ImportResultResponse, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return dto.ImportResultResponse{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedPayload, err)
	}
	if len(rows) < 2 {
		return dto.ImportResultResponse{}, fmt.Errorf("%w: file appears empty or invalid", apperrors.ErrMalformedPayload)
	}
	dataRows := rows[1:]

	result := dto.ImportResultResponse{Collection: collection}

	switch collection {
	case portssvc.CollectionEggs:
		logs := make([]domain.EggLog, 0, len(dataRows))
		for _, row := range dataRows {
			if len(row) < 2 {
				result.Skipped++
				continue
			}
			logs = append(logs, domain.EggLog{
				EggLogID:       uuid.NewString(),
				Date:           field(row, 0),
				CollectedCount: parseCount(field(row, 1)),
				SoldCount:      parseCount(field(row, 2)),
				SalePrice:      parseAmount(field(row, 3)),
				TotalSale:      parseAmount(field(row, 4)),
			})
		}
		if err := s.eggLogRepo.ReplaceAll(ctx, logs); err != nil {
			return dto.ImportResultResponse{}, fmt.Errorf("failed to import egg logs: %w", err)
		}
		result.Imported = len(logs)

	case portssvc.CollectionCustomers:
		customers := make([]domain.Customer, 0, len(dataRows))
		for _, row := range dataRows {
			if len(row) < 1 || strings.TrimSpace(field(row, 0)) == "" {
				result.Skipped++
				continue
			}
			customers = append(customers, domain.Customer{
				CustomerID: uuid.NewString(),
				Name:       field(row, 0),
				Phone:      field(row, 1),
			})
		}
		if err := s.customerRepo.ReplaceAll(ctx, customers); err != nil {
			return dto.ImportResultResponse{}, fmt.Errorf("failed to import customers: %w", err)
		}
		result.Imported = len(customers)

	case portssvc.CollectionLedger:
		customers, err := s.customerRepo.List(ctx)
		if err != nil {
			return dto.ImportResultResponse{}, fmt.Errorf("failed to load customers: %w", err)
		}
		idsByName := make(map[string]string, len(customers))
		for _, c := range customers {
			idsByName[normalizeName(c.Name)] = c.CustomerID
		}
		entries := make([]domain.LedgerEntry, 0, len(dataRows))
		for _, row := range dataRows {
			if len(row) < 2 {
				result.Skipped++
				continue
			}
			customerID, ok := idsByName[normalizeName(field(row, 1))]
			if !ok {
				result.Skipped++
				continue
			}
			entries = append(entries, domain.LedgerEntry{
				LedgerEntryID: uuid.NewString(),
				Date:          field(row, 0),
				CustomerID:    customerID,
				Type:          domain.EntryType(field(row, 2)),
				Description:   field(row, 3),
				Amount:        parseAmount(field(row, 4)),
				Quantity:      parseCount(field(row, 5)),
				PricePerUnit:  parseAmount(field(row, 6)),
			})
		}
		if err := s.ledgerRepo.ReplaceAll(ctx, entries); err != nil {
			return dto.ImportResultResponse{}, fmt.Errorf("failed to import ledger: %w", err)
		}
		result.Imported = len(entries)

	case portssvc.CollectionExpenses:
		payees, err := s.payeeRepo.List(ctx)
		if err != nil {
			return dto.ImportResultResponse{}, fmt.Errorf("failed to load payees: %w", err)
		}
		idsByName := make(map[string]string, len(payees))
		for _, p := range payees {
			idsByName[normalizeName(p.Name)] = p.PayeeID
		}
		expenses := make([]domain.Expense, 0, len(dataRows))
		for _, row := range dataRows {
			if len(row) < 2 {
				result.Skipped++
				continue
			}
			expenses = append(expenses, domain.Expense{
				ExpenseID:   uuid.NewString(),
				Date:        field(row, 0),
				PayeeID:     idsByName[normalizeName(field(row, 1))],
				Type:        domain.ExpenseType(field(row, 3)),
				Category:    field(row, 4),
				Description: field(row, 5),
				Amount:      parseAmount(field(row, 6)),
			})
		}
		if err := s.expenseRepo.ReplaceAll(ctx, expenses); err != nil {
			return dto.ImportResultResponse{}, fmt.Errorf("failed to import expenses: %w", err)
		}
		result.Imported = len(expenses)

	case portssvc.CollectionPayees:
		payees := make([]domain.Payee, 0, len(dataRows))
		for _, row := range dataRows {
			if len(row) < 1 || strings.TrimSpace(field(row, 0)) == "" {
				result.Skipped++
				continue
			}
			payees = append(payees, domain.Payee{
				PayeeID: uuid.NewString(),
				Name:    field(row, 0),
				Type:    strings.ToUpper(strings.TrimSpace(field(row, 1))),
				Phone:   field(row, 2),
			})
		}
		if err := s.payeeRepo.ReplaceAll(ctx, payees); err != nil {
			return dto.ImportResultResponse{}, fmt.Errorf("failed to import payees: %w", err)
		}
		result.Imported = len(payees)

	default:
		return dto.ImportResultResponse{}, fmt.Errorf("%w: unknown collection %q", apperrors.ErrValidation, collection)
	}

	middleware.GetLoggerFromCtx(ctx).Info("CSV import applied",
		slog.String("collection", collection),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

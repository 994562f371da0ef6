package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// ledgerService provides ledger entry operations and owns the link between
// DEBIT sales and their generated egg logs.
type ledgerService struct {
	ledgerRepo   portsrepo.LedgerRepository
	eggLogRepo   portsrepo.EggLogRepository
	customerRepo portsrepo.CustomerRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, eggLogRepo portsrepo.EggLogRepository, customerRepo portsrepo.CustomerRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		eggLogRepo:   eggLogRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateLedgerEntry appends a new entry and, for DEBIT entries with a positive
// quantity, the mirrored egg log. Amount stays authoritative even when it
// disagrees with quantity*pricePerUnit. The customer reference is soft: an
// unknown customerID is accepted and only logged.
func (s *ledgerService) CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, *domain.EggLog, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() {
		return nil, nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if req.PricePerUnit != nil && req.PricePerUnit.IsNegative() {
		return nil, nil, fmt.Errorf("%w: price per unit must not be negative", apperrors.ErrValidation)
	}

	entry := domain.LedgerEntry{
		LedgerEntryID: uuid.NewString(),
		CustomerID:    req.CustomerID,
		Date:          req.Date,
		Description:   req.Description,
		Type:          req.Type,
		Amount:        req.Amount,
		PricePerUnit:  decimal.Zero,
	}
	if req.Quantity != nil {
		entry.Quantity = *req.Quantity
	}
	if req.PricePerUnit != nil {
		entry.PricePerUnit = *req.PricePerUnit
	}

	if _, err := s.findCustomer(ctx, req.CustomerID); err != nil {
		logger.Warn("Ledger entry references unknown customer",
			slog.String("customer_id", req.CustomerID))
	}

	if err := s.ledgerRepo.Append(ctx, entry); err != nil {
		return nil, nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	var generated *domain.EggLog
	if entry.GeneratesEggLog() {
		log := entry.GeneratedEggLog(uuid.NewString())
		if err := s.eggLogRepo.Append(ctx, log); err != nil {
			return nil, nil, fmt.Errorf("failed to save generated egg log for entry %s: %w", entry.LedgerEntryID, err)
		}
		generated = &log
		logger.Info("Generated egg log for ledger sale",
			slog.String("ledger_entry_id", entry.LedgerEntryID),
			slog.String("egg_log_id", log.EggLogID),
			slog.Int64("sold", log.SoldCount))
	}

	logger.Info("Ledger entry created",
		slog.String("ledger_entry_id", entry.LedgerEntryID),
		slog.String("type", string(entry.Type)),
		slog.String("amount", entry.Amount.String()))
	return &entry, generated, nil
}

func (s *ledgerService) ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.List(ctx)
}

// DeleteLedgerEntry removes the entry and then cascades to the linked egg log,
// so callers observe the cascade as one operation. Only the first matching log
// is removed if storage ever holds duplicates for one ledgerId. The cascade is
// a no-op when no linked log exists (CREDIT entries, quantity-less DEBITs).
func (s *ledgerService) DeleteLedgerEntry(ctx context.Context, ledgerEntryID string) error {
	entries, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, e := range entries {
		if e.LedgerEntryID == ledgerEntryID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, ledgerEntryID)
	}

	if err := s.ledgerRepo.RemoveByID(ctx, ledgerEntryID); err != nil {
		return fmt.Errorf("failed to remove ledger entry %s: %w", ledgerEntryID, err)
	}

	logs, err := s.eggLogRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, l := range logs {
		if l.LedgerID == ledgerEntryID {
			if err := s.eggLogRepo.RemoveByID(ctx, l.EggLogID); err != nil {
				return fmt.Errorf("failed to cascade egg log %s for entry %s: %w", l.EggLogID, ledgerEntryID, err)
			}
			middleware.GetLoggerFromCtx(ctx).Info("Cascaded linked egg log",
				slog.String("ledger_entry_id", ledgerEntryID),
				slog.String("egg_log_id", l.EggLogID))
			break
		}
	}
	return nil
}

func (s *ledgerService) findCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.CustomerID == customerID {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
}

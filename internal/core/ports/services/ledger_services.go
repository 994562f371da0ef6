package services

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
)

// LedgerSvcFacade defines ledger entry operations, including the link-manager
// contract: DEBIT entries with a positive quantity generate an egg log on
// create, and deletion cascades to the linked log.
type LedgerSvcFacade interface {
	// CreateLedgerEntry appends a new entry and, when the entry qualifies,
	// the generated egg log (returned alongside, nil otherwise).
	CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, *domain.EggLog, error)

	// ListLedgerEntries returns the full collection.
	ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error)

	// DeleteLedgerEntry removes the entry and then any egg log linked to it.
	// Returns apperrors.ErrNotFound for unknown IDs.
	DeleteLedgerEntry(ctx context.Context, ledgerEntryID string) error
}

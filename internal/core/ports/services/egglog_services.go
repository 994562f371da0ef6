package services

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
)

// EggLogSvcFacade defines egg production tracking operations.
type EggLogSvcFacade interface {
	// CreateEggLog records a manual log (collection, optionally a cash sale).
	CreateEggLog(ctx context.Context, req dto.CreateEggLogRequest) (*domain.EggLog, error)

	// ListEggLogs returns the full collection.
	ListEggLogs(ctx context.Context) ([]domain.EggLog, error)

	// DeleteEggLog removes one log by ID. Removing an unknown ID is a no-op.
	DeleteEggLog(ctx context.Context, eggLogID string) error

	// CurrentInventory returns collected minus sold across all logs.
	CurrentInventory(ctx context.Context) (int64, error)

	// InventoryStats returns opening/closing stock around one date.
	InventoryStats(ctx context.Context, date string) (domain.InventoryStats, error)
}

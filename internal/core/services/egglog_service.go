package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// eggLogService provides manual egg log tracking and stock derivations.
type eggLogService struct {
	eggLogRepo portsrepo.EggLogRepository
}

// NewEggLogService creates a new EggLogService.
func NewEggLogService(eggLogRepo portsrepo.EggLogRepository) portssvc.EggLogSvcFacade {
	return &eggLogService{eggLogRepo: eggLogRepo}
}

var _ portssvc.EggLogSvcFacade = (*eggLogService)(nil)

// CreateEggLog records a manual log. Monetary fields must be non-negative;
// direction is never encoded by sign.
func (s *eggLogService) CreateEggLog(ctx context.Context, req dto.CreateEggLogRequest) (*domain.EggLog, error) {
	if req.SalePrice.IsNegative() || req.TotalSale.IsNegative() {
		return nil, fmt.Errorf("%w: sale price and total must not be negative", apperrors.ErrValidation)
	}

	log := domain.EggLog{
		EggLogID:       uuid.NewString(),
		Date:           req.Date,
		CollectedCount: req.CollectedCount,
		SoldCount:      req.SoldCount,
		SalePrice:      req.SalePrice,
		TotalSale:      req.TotalSale,
	}
	if err := s.eggLogRepo.Append(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save egg log: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Egg log recorded",
		slog.String("egg_log_id", log.EggLogID), slog.String("date", log.Date),
		slog.Int64("collected", log.CollectedCount))
	return &log, nil
}

func (s *eggLogService) ListEggLogs(ctx context.Context) ([]domain.EggLog, error) {
	return s.eggLogRepo.List(ctx)
}

// DeleteEggLog removes one log. Unknown IDs are a no-op, mirroring the
// filter-out-by-id store semantics.
func (s *eggLogService) DeleteEggLog(ctx context.Context, eggLogID string) error {
	return s.eggLogRepo.RemoveByID(ctx, eggLogID)
}

func (s *eggLogService) CurrentInventory(ctx context.Context) (int64, error) {
	logs, err := s.eggLogRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	return domain.CurrentInventory(logs), nil
}

func (s *eggLogService) InventoryStats(ctx context.Context, date string) (domain.InventoryStats, error) {
	logs, err := s.eggLogRepo.List(ctx)
	if err != nil {
		return domain.InventoryStats{}, err
	}
	return domain.InventoryStatsFor(logs, date), nil
}

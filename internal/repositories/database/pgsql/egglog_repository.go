package pgsql

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEggLogRepository struct {
	BaseRepository
}

// newPgxEggLogRepository creates the repository for the eggLogs collection.
func newPgxEggLogRepository(pool *pgxpool.Pool) portsrepo.EggLogRepository {
	return &PgxEggLogRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EggLogRepository = (*PgxEggLogRepository)(nil)

func (r *PgxEggLogRepository) List(ctx context.Context) ([]domain.EggLog, error) {
	var ms []models.EggLog
	r.readCollection(ctx, collectionEggs, &ms)
	return mapping.ToDomainEggLogs(ms), nil
}

func (r *PgxEggLogRepository) ReplaceAll(ctx context.Context, logs []domain.EggLog) error {
	return r.writeCollection(ctx, collectionEggs, mapping.ToModelEggLogs(logs))
}

func (r *PgxEggLogRepository) Append(ctx context.Context, log domain.EggLog) error {
	var ms []models.EggLog
	r.readCollection(ctx, collectionEggs, &ms)
	ms = append(ms, mapping.ToModelEggLog(log))
	return r.writeCollection(ctx, collectionEggs, ms)
}

func (r *PgxEggLogRepository) RemoveByID(ctx context.Context, eggLogID string) error {
	var ms []models.EggLog
	r.readCollection(ctx, collectionEggs, &ms)
	kept := ms[:0]
	for _, m := range ms {
		if m.ID != eggLogID {
			kept = append(kept, m)
		}
	}
	return r.writeCollection(ctx, collectionEggs, kept)
}

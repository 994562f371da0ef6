package pgsql

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates the repository for the settings singleton.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// Get returns the saved settings merged over defaults, so a record saved by an
// older version (or none at all) still yields a complete value.
func (r *PgxSettingsRepository) Get(ctx context.Context) (domain.FarmSettings, error) {
	var m models.FarmSettings
	r.readCollection(ctx, collectionSettings, &m)
	return mapping.ToDomainFarmSettings(m), nil
}

func (r *PgxSettingsRepository) Save(ctx context.Context, settings domain.FarmSettings) error {
	return r.writeCollection(ctx, collectionSettings, mapping.ToModelFarmSettings(settings))
}

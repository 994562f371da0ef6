package pgsql

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the repository for the ledger collection.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) List(ctx context.Context) ([]domain.LedgerEntry, error) {
	var ms []models.LedgerEntry
	r.readCollection(ctx, collectionLedger, &ms)
	return mapping.ToDomainLedgerEntries(ms), nil
}

func (r *PgxLedgerRepository) ReplaceAll(ctx context.Context, entries []domain.LedgerEntry) error {
	return r.writeCollection(ctx, collectionLedger, mapping.ToModelLedgerEntries(entries))
}

func (r *PgxLedgerRepository) Append(ctx context.Context, entry domain.LedgerEntry) error {
	var ms []models.LedgerEntry
	r.readCollection(ctx, collectionLedger, &ms)
	ms = append(ms, mapping.ToModelLedgerEntry(entry))
	return r.writeCollection(ctx, collectionLedger, ms)
}

func (r *PgxLedgerRepository) RemoveByID(ctx context.Context, ledgerEntryID string) error {
	var ms []models.LedgerEntry
	r.readCollection(ctx, collectionLedger, &ms)
	kept := ms[:0]
	for _, m := range ms {
		if m.ID != ledgerEntryID {
			kept = append(kept, m)
		}
	}
	return r.writeCollection(ctx, collectionLedger, kept)
}

package pgsql

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayeeRepository struct {
	BaseRepository
}

// newPgxPayeeRepository creates the repository for the payees collection.
func newPgxPayeeRepository(pool *pgxpool.Pool) portsrepo.PayeeRepository {
	return &PgxPayeeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PayeeRepository = (*PgxPayeeRepository)(nil)

func (r *PgxPayeeRepository) List(ctx context.Context) ([]domain.Payee, error) {
	var ms []models.Payee
	r.readCollection(ctx, collectionPayees, &ms)
	return mapping.ToDomainPayees(ms), nil
}

func (r *PgxPayeeRepository) ReplaceAll(ctx context.Context, payees []domain.Payee) error {
	return r.writeCollection(ctx, collectionPayees, mapping.ToModelPayees(payees))
}

func (r *PgxPayeeRepository) Append(ctx context.Context, payee domain.Payee) error {
	var ms []models.Payee
	r.readCollection(ctx, collectionPayees, &ms)
	ms = append(ms, mapping.ToModelPayee(payee))
	return r.writeCollection(ctx, collectionPayees, ms)
}

func (r *PgxPayeeRepository) RemoveByID(ctx context.Context, payeeID string) error {
	var ms []models.Payee
	r.readCollection(ctx, collectionPayees, &ms)
	kept := ms[:0]
	for _, m := range ms {
		if m.ID != payeeID {
			kept = append(kept, m)
		}
	}
	return r.writeCollection(ctx, collectionPayees, kept)
}

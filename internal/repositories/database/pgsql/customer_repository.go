package pgsql

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates the repository for the customers collection.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var ms []models.Customer
	r.readCollection(ctx, collectionCustomers, &ms)
	return mapping.ToDomainCustomers(ms), nil
}

func (r *PgxCustomerRepository) ReplaceAll(ctx context.Context, customers []domain.Customer) error {
	return r.writeCollection(ctx, collectionCustomers, mapping.ToModelCustomers(customers))
}

func (r *PgxCustomerRepository) Append(ctx context.Context, customer domain.Customer) error {
	var ms []models.Customer
	r.readCollection(ctx, collectionCustomers, &ms)
	ms = append(ms, mapping.ToModelCustomer(customer))
	return r.writeCollection(ctx, collectionCustomers, ms)
}

func (r *PgxCustomerRepository) RemoveByID(ctx context.Context, customerID string) error {
	var ms []models.Customer
	r.readCollection(ctx, collectionCustomers, &ms)
	kept := ms[:0]
	for _, m := range ms {
		if m.ID != customerID {
			kept = append(kept, m)
		}
	}
	return r.writeCollection(ctx, collectionCustomers, kept)
}

package pgsql

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates the repository for the expenses collection.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	var ms []models.Expense
	r.readCollection(ctx, collectionExpenses, &ms)
	return mapping.ToDomainExpenses(ms), nil
}

func (r *PgxExpenseRepository) ReplaceAll(ctx context.Context, expenses []domain.Expense) error {
	return r.writeCollection(ctx, collectionExpenses, mapping.ToModelExpenses(expenses))
}

func (r *PgxExpenseRepository) Append(ctx context.Context, expense domain.Expense) error {
	var ms []models.Expense
	r.readCollection(ctx, collectionExpenses, &ms)
	ms = append(ms, mapping.ToModelExpense(expense))
	return r.writeCollection(ctx, collectionExpenses, ms)
}

func (r *PgxExpenseRepository) RemoveByID(ctx context.Context, expenseID string) error {
	var ms []models.Expense
	r.readCollection(ctx, collectionExpenses, &ms)
	kept := ms[:0]
	for _, m := range ms {
		if m.ID != expenseID {
			kept = append(kept, m)
		}
	}
	return r.writeCollection(ctx, collectionExpenses, kept)
}

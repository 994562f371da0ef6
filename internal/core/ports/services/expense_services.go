package services

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
)

// ExpenseSvcFacade defines expense tracking operations.
type ExpenseSvcFacade interface {
	// CreateExpense records a new expense or payment.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// ListExpenses returns the full collection.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// DeleteExpense removes one expense by ID. Removing an unknown ID is a no-op.
	DeleteExpense(ctx context.Context, expenseID string) error

	// SuggestedCategories returns the suggested (not enforced) category list.
	SuggestedCategories() []string
}

// PayeeSvcFacade defines payee registry operations.
type PayeeSvcFacade interface {
	// CreatePayee registers a new payee.
	CreatePayee(ctx context.Context, req dto.CreatePayeeRequest) (*domain.Payee, error)

	// ListPayees returns the full collection.
	ListPayees(ctx context.Context) ([]domain.Payee, error)

	// DeletePayee removes a payee. Expenses referencing it are kept; their
	// lookups fall back to the general placeholder.
	DeletePayee(ctx context.Context, payeeID string) error
}

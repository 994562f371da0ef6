package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// expenseService provides expense and payment tracking.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense records a new expense. PAYMENT entries always carry the
// "Payment" category; the payee reference is optional and soft.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	category := req.Category
	if req.Type == domain.Payment {
		category = domain.PaymentCategory
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Date:        req.Date,
		Category:    category,
		Description: req.Description,
		Amount:      req.Amount,
		PayeeID:     req.PayeeID,
		Type:        req.Type,
	}
	if err := s.expenseRepo.Append(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("type", string(expense.Type)),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx)
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.expenseRepo.RemoveByID(ctx, expenseID)
}

func (s *expenseService) SuggestedCategories() []string {
	return domain.SuggestedExpenseCategories
}

// payeeService provides the payee registry.
type payeeService struct {
	payeeRepo portsrepo.PayeeRepository
}

// NewPayeeService creates a new PayeeService.
func NewPayeeService(payeeRepo portsrepo.PayeeRepository) portssvc.PayeeSvcFacade {
	return &payeeService{payeeRepo: payeeRepo}
}

var _ portssvc.PayeeSvcFacade = (*payeeService)(nil)

// CreatePayee registers a payee. The type tag is normalized to upper case.
func (s *payeeService) CreatePayee(ctx context.Context, req dto.CreatePayeeRequest) (*domain.Payee, error) {
	payee := domain.Payee{
		PayeeID: uuid.NewString(),
		Name:    req.Name,
		Type:    strings.ToUpper(strings.TrimSpace(req.Type)),
		Phone:   req.Phone,
	}
	if err := s.payeeRepo.Append(ctx, payee); err != nil {
		return nil, fmt.Errorf("failed to save payee: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Payee created",
		slog.String("payee_id", payee.PayeeID), slog.String("type", payee.Type))
	return &payee, nil
}

func (s *payeeService) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	return s.payeeRepo.List(ctx)
}

// DeletePayee removes the payee only; expenses keep their payeeId reference
// and render as general cash from then on.
func (s *payeeService) DeletePayee(ctx context.Context, payeeID string) error {
	return s.payeeRepo.RemoveByID(ctx, payeeID)
}

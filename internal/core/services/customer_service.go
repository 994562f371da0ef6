package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	portsrepo "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/repositories"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// customerService provides the customer registry and per-customer statements.
type customerService struct {
	customerRepo portsrepo.CustomerRepository
	ledgerRepo   portsrepo.LedgerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepository, ledgerRepo portsrepo.LedgerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
	}
	if err := s.customerRepo.Append(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Customer created",
		slog.String("customer_id", customer.CustomerID), slog.String("name", customer.Name))
	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

// DeleteCustomer removes the customer only. Ledger entries keep their
// customerId reference and render as unknown from then on.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.customerRepo.RemoveByID(ctx, customerID)
}

func (s *customerService) FindCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.CustomerID == customerID {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
}

// Statement folds the customer's ledger into running-balance lines. An ID with
// no entries (including a deleted customer) yields an empty statement.
func (s *customerService) Statement(ctx context.Context, customerID string) ([]domain.LedgerLine, decimal.Decimal, error) {
	entries, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	lines, balance := domain.CustomerRunningBalance(entries, customerID)
	return lines, balance, nil
}

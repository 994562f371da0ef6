package services

import (
	"context"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/shopspring/decimal"
)

// CustomerSvcFacade defines customer registry and statement operations.
type CustomerSvcFacade interface {
	// CreateCustomer registers a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// ListCustomers returns the full collection.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// DeleteCustomer removes a customer. Ledger entries referencing it are
	// kept; their lookups fall back to a placeholder.
	DeleteCustomer(ctx context.Context, customerID string) error

	// Statement returns the customer's ledger lines with running balances and
	// the current balance. Unknown customer IDs yield an empty statement.
	Statement(ctx context.Context, customerID string) ([]domain.LedgerLine, decimal.Decimal, error)

	// FindCustomer returns one customer or apperrors.ErrNotFound.
	FindCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
}

package dto

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Phone:      c.Phone,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// CustomerStatementResponse is the per-customer ledger view: every entry with
// its cumulative balance, plus the current balance.
type CustomerStatementResponse struct {
	CustomerID       string               `json:"customerID"`
	CustomerName     string               `json:"customerName"`
	Entries          []LedgerLineResponse `json:"entries"`
	CurrentBalance   decimal.Decimal      `json:"currentBalance"`
	FormattedBalance string               `json:"formattedBalance"`
}

package dto

import "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"

// CreatePayeeRequest defines the data needed to register a payee.
// Type is a free-form tag (VENDOR, EMPLOYEE, or anything custom).
type CreatePayeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Phone string `json:"phone"`
}

// PayeeResponse defines the data returned for a payee.
type PayeeResponse struct {
	PayeeID string `json:"payeeID"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Phone   string `json:"phone,omitempty"`
}

// ToPayeeResponse converts a domain.Payee to PayeeResponse.
func ToPayeeResponse(p *domain.Payee) PayeeResponse {
	return PayeeResponse{
		PayeeID: p.PayeeID,
		Name:    p.Name,
		Type:    p.Type,
		Phone:   p.Phone,
	}
}

// ToListPayeeResponse converts a slice of domain.Payee.
func ToListPayeeResponse(payees []domain.Payee) []PayeeResponse {
	res := make([]PayeeResponse, len(payees))
	for i, p := range payees {
		res[i] = ToPayeeResponse(&p)
	}
	return res
}

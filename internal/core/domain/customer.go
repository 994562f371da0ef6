package domain

// Customer is a buyer tracked in the customer ledger.
// Ledger entries reference customers by ID without ownership; deleting a
// customer leaves its entries in place and lookups fall back to a placeholder.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

// UnknownCustomerName is the placeholder rendered for dangling customer references.
const UnknownCustomerName = "Unknown Customer"

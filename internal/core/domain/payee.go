package domain

// Payee is a party the farm pays: a vendor, an employee, or any custom tag.
// Expenses reference payees by ID without ownership.
type Payee struct {
	PayeeID string `json:"payeeID"` // Primary Key (UUID)
	Name    string `json:"name"`
	Type    string `json:"type"` // Free-form tag, e.g. VENDOR or EMPLOYEE
	Phone   string `json:"phone"`
}

// GeneralPayeeName is the placeholder rendered for expenses with no payee.
const GeneralPayeeName = "General / Cash"

package models

// Payee is the persisted shape inside the payees collection snapshot.
type Payee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Phone string `json:"phone,omitempty"`
}

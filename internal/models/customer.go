package models

// Customer is the persisted shape inside the customers collection snapshot.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

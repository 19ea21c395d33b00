package domain

// Request is a user-submitted request record. Present in the store schema
// but never populated by any in-scope flow.
type Request struct {
	ID        int    `json:"id"`
	AccountID int    `json:"accountId"`
	Subject   string `json:"subject"`
	Status    string `json:"status"`
}

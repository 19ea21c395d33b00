package domain

// Department represents a high-level organizational unit.
type Department struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

package domain

// Employee belongs to a department. No in-scope flow populates employees;
// views only distinguish empty from non-empty collections.
type Employee struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	DepartmentID int    `json:"departmentId"`
	Position     string `json:"position"`
}

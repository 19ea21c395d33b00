// Package store owns the persisted record collections. The whole dataset
// lives in one JSON blob; every mutation rewrites the blob in full.
package store

import "github.com/NoeTobes/FullStackWebApp/internal/domain"

// Persisted key names. BlobKey holds the record collections; the other two
// are independently settable scalars.
const (
	BlobKey         = "ipt_demo_v1"
	PendingEmailKey = "unverified_email"
	SessionKey      = "auth_token"
)

// Store is the persisted blob layout.
type Store struct {
	Accounts    []domain.Account    `json:"accounts"`
	Departments []domain.Department `json:"departments"`
	Employees   []domain.Employee   `json:"employees"`
	Requests    []domain.Request    `json:"requests"`
}

// Defaults is the dataset seeded when no blob exists or the stored one is
// unparsable: one verified admin and two departments.
func Defaults() Store {
	return Store{
		Accounts: []domain.Account{
			{
				ID:        1,
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Role:      domain.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []domain.Department{
			{ID: 1, Name: "Engineering", Description: "Software development and engineering"},
			{ID: 2, Name: "HR", Description: "Human resources"},
		},
		Employees: []domain.Employee{},
		Requests:  []domain.Request{},
	}
}

package domain

// Role distinguishes regular users from administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is the domain model for registered accounts. Passwords are stored
// and compared in plaintext; this is a demo stand-in, not real
// authentication. Field tags follow the persisted blob layout.
type Account struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Verified  bool   `json:"verified"`
}

// FullName returns the display name for UI chrome.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// IsAdmin reports whether the account carries the admin role.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RoleLabel returns the human-readable role name shown on the profile page.
func (a Account) RoleLabel() string {
	if a.Role == RoleAdmin {
		return "Administrator"
	}
	return "User"
}

package routing

// SessionInfo is the slice of session state the access policy reads.
type SessionInfo interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Decision is the access policy outcome. Allow renders in place; otherwise
// Target names the redirect destination and Reason the user-facing notice.
type Decision struct {
	Allow  bool
	Target string
	Reason string
}

var protectedViews = map[View]struct{}{
	ViewProfile:  {},
	ViewRequests: {},
}

var adminViews = map[View]struct{}{
	ViewEmployees:   {},
	ViewDepartments: {},
	ViewAccounts:    {},
}

// Decide applies the two access tiers in order: authenticated-only views
// redirect to login, admin-only views redirect home. Pure; the router owns
// all side effects.
func Decide(view View, s SessionInfo) Decision {
	if _, protected := protectedViews[view]; protected && !s.IsAuthenticated() {
		return Decision{Target: PathLogin, Reason: "Please log in to continue"}
	}
	if _, adminOnly := adminViews[view]; adminOnly && !s.IsAdmin() {
		return Decision{Target: PathHome, Reason: "Administrator access required"}
	}
	return Decision{Allow: true}
}

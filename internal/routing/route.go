// Package routing owns the navigation core: the static route table, the
// access policy consulted on every navigation, and the router that resolves
// paths and dispatches view rendering.
package routing

import "strings"

// View identifies one of the fixed set of views.
type View string

const (
	ViewHome        View = "home"
	ViewRegister    View = "register"
	ViewVerifyEmail View = "verify-email"
	ViewLogin       View = "login"
	ViewProfile     View = "profile"
	ViewEmployees   View = "employees"
	ViewDepartments View = "departments"
	ViewAccounts    View = "accounts"
	ViewRequests    View = "requests"
)

// Route paths.
const (
	PathHome        = "/"
	PathRegister    = "/register"
	PathVerifyEmail = "/verify-email"
	PathLogin       = "/login"
	PathProfile     = "/profile"
	PathEmployees   = "/employees"
	PathDepartments = "/departments"
	PathAccounts    = "/accounts"
	PathRequests    = "/requests"
)

var routeTable = map[string]View{
	PathHome:        ViewHome,
	PathRegister:    ViewRegister,
	PathVerifyEmail: ViewVerifyEmail,
	PathLogin:       ViewLogin,
	PathProfile:     ViewProfile,
	PathEmployees:   ViewEmployees,
	PathDepartments: ViewDepartments,
	PathAccounts:    ViewAccounts,
	PathRequests:    ViewRequests,
}

var viewPaths = map[View]string{
	ViewHome:        PathHome,
	ViewRegister:    PathRegister,
	ViewVerifyEmail: PathVerifyEmail,
	ViewLogin:       PathLogin,
	ViewProfile:     PathProfile,
	ViewEmployees:   PathEmployees,
	ViewDepartments: PathDepartments,
	ViewAccounts:    PathAccounts,
	ViewRequests:    PathRequests,
}

var viewTitles = map[View]string{
	ViewHome:        "Home",
	ViewRegister:    "Register",
	ViewVerifyEmail: "Verify Email",
	ViewLogin:       "Login",
	ViewProfile:     "Profile",
	ViewEmployees:   "Employees",
	ViewDepartments: "Departments",
	ViewAccounts:    "Accounts",
	ViewRequests:    "My Requests",
}

// Resolve maps a path to its view, stripping any trailing query component.
// Unrecognized paths resolve to the home view; they carry no access tier, so
// no stricter 404 handling applies.
func Resolve(path string) View {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if view, ok := routeTable[path]; ok {
		return view
	}
	return ViewHome
}

// PathFor returns the canonical path of a view.
func PathFor(view View) string {
	if path, ok := viewPaths[view]; ok {
		return path
	}
	return PathHome
}

// PageTitle builds the browser title for a view.
func PageTitle(view View) string {
	name, ok := viewTitles[view]
	if !ok {
		name = "Full-Stack App"
	}
	return name + " - Full-Stack App (Student Build)"
}

// AllViews lists every view, in navigation order.
func AllViews() []View {
	return []View{
		ViewHome, ViewRegister, ViewVerifyEmail, ViewLogin, ViewProfile,
		ViewEmployees, ViewDepartments, ViewAccounts, ViewRequests,
	}
}

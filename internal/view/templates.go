package view

// pageTemplates holds every page as a named template. Each view template
// wraps its body in the shared header/footer chrome.
const pageTemplates = `
{{define "header"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body class="{{if .Authenticated}}authenticated{{else}}not-authenticated{{end}}{{if .Admin}} is-admin{{end}}">
<nav class="navbar">
<ul>
{{range .Nav}}<li><a href="{{.Path}}"{{if .Active}} class="active"{{end}}>{{.Name}}</a></li>
{{end}}</ul>
{{if .Authenticated}}<div class="user-chrome">
<span id="username-display">{{.Username}}</span>
<form method="post" action="/logout"><button id="logout-btn" type="submit">Logout</button></form>
</div>{{end}}
</nav>
{{range .Notices}}<div class="toast toast-{{.Level}}">{{.Message}}</div>
{{end}}
<main class="page active" id="{{.View}}-page">{{end}}

{{define "footer"}}</main>
</body>
</html>{{end}}

{{define "view:home"}}{{template "header" .}}
<h1>Welcome</h1>
<p>A small account demo: register, verify your email, log in, and browse
the pages your role allows.</p>
{{if not .Authenticated}}<p><a href="/register">Create an account</a> or <a href="/login">log in</a>.</p>{{end}}
{{template "footer" .}}{{end}}

{{define "view:register"}}{{template "header" .}}
<h1>Register</h1>
<form id="register-form" method="post" action="/register">
<label>First name <input name="firstName" value="{{.Form.firstName}}"></label>
<label>Last name <input name="lastName" value="{{.Form.lastName}}"></label>
<label>Email <input name="email" type="email" value="{{.Form.email}}"></label>
<label>Password <input name="password" type="password"></label>
<button type="submit">Register</button>
</form>
{{template "footer" .}}{{end}}

{{define "view:verify-email"}}{{template "header" .}}
<h1>Verify Email</h1>
{{if .PendingEmail}}<p>A verification link was sent to <strong id="unverified-email">{{.PendingEmail}}</strong>.
This demo has no mailer; press the button to simulate clicking the link.</p>{{else}}<p>No email is awaiting verification.</p>{{end}}
<form method="post" action="/verify-email">
<button id="simulate-verify-btn" type="submit">Simulate Verification</button>
</form>
{{template "footer" .}}{{end}}

{{define "view:login"}}{{template "header" .}}
<h1>Login</h1>
<form id="login-form" method="post" action="/login">
<label>Email <input name="email" type="email" value="{{.Form.email}}"></label>
<label>Password <input name="password" type="password"></label>
<button type="submit">Login</button>
</form>
{{template "footer" .}}{{end}}

{{define "view:profile"}}{{template "header" .}}
<h1>Profile</h1>
{{with .Profile}}<dl>
<dt>Name</dt><dd id="profile-name">{{.FullName}}</dd>
<dt>Email</dt><dd id="profile-email">{{.Email}}</dd>
<dt>Role</dt><dd id="profile-role">{{.RoleLabel}}</dd>
</dl>{{end}}
<button id="edit-profile-btn" disabled title="coming soon">Edit Profile</button>
{{template "footer" .}}{{end}}

{{define "view:employees"}}{{template "header" .}}
<h1>Employees</h1>
{{if .Employees}}<table>
<tr><th>ID</th><th>Name</th><th>Email</th><th>Department</th><th>Position</th></tr>
{{range .Employees}}<tr><td>{{.ID}}</td><td>{{.FirstName}} {{.LastName}}</td><td>{{.Email}}</td><td>{{.DepartmentID}}</td><td>{{.Position}}</td></tr>
{{end}}</table>{{else}}<p class="empty-state">No employees yet.</p>{{end}}
<button id="add-employee-btn" disabled title="coming soon">Add Employee</button>
{{template "footer" .}}{{end}}

{{define "view:departments"}}{{template "header" .}}
<h1>Departments</h1>
{{if .Departments}}<table>
<tr><th>ID</th><th>Name</th><th>Description</th></tr>
{{range .Departments}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Description}}</td></tr>
{{end}}</table>{{else}}<p class="empty-state">No departments yet.</p>{{end}}
<button id="add-department-btn" disabled title="coming soon">Add Department</button>
{{template "footer" .}}{{end}}

{{define "view:accounts"}}{{template "header" .}}
<h1>Accounts</h1>
{{if .Accounts}}<table>
<tr><th>ID</th><th>Name</th><th>Email</th><th>Role</th><th>Verified</th></tr>
{{range .Accounts}}<tr><td>{{.ID}}</td><td>{{.FullName}}</td><td>{{.Email}}</td><td>{{.Role}}</td><td>{{.Verified}}</td></tr>
{{end}}</table>{{else}}<p class="empty-state">No accounts yet.</p>{{end}}
<button id="add-account-btn" disabled title="coming soon">Add Account</button>
{{template "footer" .}}{{end}}

{{define "view:requests"}}{{template "header" .}}
<h1>My Requests</h1>
{{if .Requests}}<table>
<tr><th>ID</th><th>Subject</th><th>Status</th></tr>
{{range .Requests}}<tr><td>{{.ID}}</td><td>{{.Subject}}</td><td>{{.Status}}</td></tr>
{{end}}</table>{{else}}<p class="empty-state">You have no requests yet.</p>{{end}}
<button id="new-request-btn" disabled title="coming soon">New Request</button>
{{template "footer" .}}{{end}}
`

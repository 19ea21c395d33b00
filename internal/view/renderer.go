// Package view renders the application's HTML. The router treats this
// package as an external collaborator: it hands over a view id and the
// renderer paints the document from session and record-store contents.
package view

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/NoeTobes/FullStackWebApp/internal/domain"
	"github.com/NoeTobes/FullStackWebApp/internal/routing"
	"github.com/NoeTobes/FullStackWebApp/internal/session"
	"github.com/NoeTobes/FullStackWebApp/internal/store"
)

// NavLink is one entry in the top navigation.
type NavLink struct {
	Path   string
	Name   string
	Active bool
}

// Data carries everything a view template reads.
type Data struct {
	View          routing.View
	Title         string
	Authenticated bool
	Admin         bool
	Username      string
	Profile       *domain.Account
	PendingEmail  string
	Accounts      []domain.Account
	Departments   []domain.Department
	Employees     []domain.Employee
	Requests      []domain.Request
	Notices       []Notice
	Form          map[string]string
	Nav           []NavLink
}

// HTMLRenderer executes the page templates.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded page templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("pages").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render produces the full page for a view.
func (r *HTMLRenderer) Render(view routing.View, data Data) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "view:"+string(view), data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Assemble gathers template data for a view from session and store state.
func Assemble(view routing.View, sess *session.Session, records *store.Records, pendingEmail string, notices []Notice, form map[string]string) Data {
	data := Data{
		View:          view,
		Title:         routing.PageTitle(view),
		Authenticated: sess.IsAuthenticated(),
		Admin:         sess.IsAdmin(),
		Username:      "User",
		PendingEmail:  pendingEmail,
		Accounts:      records.Accounts(),
		Departments:   records.Departments(),
		Employees:     records.Employees(),
		Requests:      records.Requests(),
		Notices:       notices,
		Form:          form,
	}
	if identity, ok := sess.Identity(); ok {
		data.Username = identity.FullName()
		data.Profile = identity
	}

	data.Nav = append(data.Nav, NavLink{Path: routing.PathHome, Name: "Home", Active: view == routing.ViewHome})
	if data.Authenticated {
		data.Nav = append(data.Nav,
			NavLink{Path: routing.PathProfile, Name: "Profile", Active: view == routing.ViewProfile},
			NavLink{Path: routing.PathRequests, Name: "My Requests", Active: view == routing.ViewRequests},
		)
	} else {
		data.Nav = append(data.Nav,
			NavLink{Path: routing.PathRegister, Name: "Register", Active: view == routing.ViewRegister},
			NavLink{Path: routing.PathLogin, Name: "Login", Active: view == routing.ViewLogin},
		)
	}
	if data.Admin {
		data.Nav = append(data.Nav,
			NavLink{Path: routing.PathEmployees, Name: "Employees", Active: view == routing.ViewEmployees},
			NavLink{Path: routing.PathDepartments, Name: "Departments", Active: view == routing.ViewDepartments},
			NavLink{Path: routing.PathAccounts, Name: "Accounts", Active: view == routing.ViewAccounts},
		)
	}
	return data
}

// PageRenderer adapts the HTML renderer to the router's render delegate,
// painting into the shared document.
type PageRenderer struct {
	html    *HTMLRenderer
	doc     *Document
	session *session.Session
	records *store.Records
	toasts  *ToastCenter
	logger  *zap.Logger
}

// NewPageRenderer wires the renderer's collaborators.
func NewPageRenderer(html *HTMLRenderer, doc *Document, sess *session.Session, records *store.Records, toasts *ToastCenter, logger *zap.Logger) *PageRenderer {
	return &PageRenderer{html: html, doc: doc, session: sess, records: records, toasts: toasts, logger: logger}
}

// Render implements routing.Renderer. Safe to call redundantly; each call
// repaints the document in full.
func (p *PageRenderer) Render(view routing.View) {
	html, err := p.Paint(view, nil)
	if err != nil {
		p.logger.Error("render failed", zap.String("view", string(view)), zap.Error(err))
		return
	}
	p.doc.Set(view, routing.PageTitle(view), html)
}

// Paint renders a view with optional form values re-populated, draining any
// queued notices into the page.
func (p *PageRenderer) Paint(view routing.View, form map[string]string) (string, error) {
	pending, _, err := p.records.PendingEmail(context.Background())
	if err != nil {
		p.logger.Warn("pending email unavailable", zap.Error(err))
	}
	data := Assemble(view, p.session, p.records, pending, p.toasts.Drain(), form)
	return p.html.Render(view, data)
}

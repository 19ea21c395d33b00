package view

import (
	"sync"

	"github.com/NoeTobes/FullStackWebApp/internal/routing"
)

// Document holds the currently painted page, the server-side stand-in for
// the single browser document the views render into.
type Document struct {
	mu    sync.RWMutex
	view  routing.View
	title string
	html  string
}

// NewDocument returns a blank document.
func NewDocument() *Document {
	return &Document{}
}

// Set replaces the painted page.
func (d *Document) Set(view routing.View, title, html string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view = view
	d.title = title
	d.html = html
}

// HTML returns the painted page body.
func (d *Document) HTML() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.html
}

// View returns the painted view id.
func (d *Document) View() routing.View {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.view
}

// Title returns the painted page title.
func (d *Document) Title() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.title
}

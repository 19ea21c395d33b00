package routing

import (
	"sync"

	"go.uber.org/zap"

	"github.com/NoeTobes/FullStackWebApp/internal/observability"
)

// NoticeLevel grades user-facing notices.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notifier surfaces transient notices (the toast collaborator).
type Notifier interface {
	Notify(level NoticeLevel, message string)
}

// Renderer paints the UI region for a view. Render must be safe to call
// redundantly: navigating to the already-current route re-runs the full
// pipeline.
type Renderer interface {
	Render(view View)
}

// Router owns the current route. Navigate is the single entry point: it
// moves the location marker, and the location change is what triggers
// re-evaluation, so programmatic navigation and history-style navigation
// take the same path. Policy redirects recurse through the same entry point
// and settle before Navigate returns.
type Router struct {
	mu       sync.Mutex
	session  SessionInfo
	renderer Renderer
	notifier Notifier
	logger   *zap.Logger
	metrics  *observability.Metrics

	location string
	current  View
	resolved bool
	active   map[View]bool
	title    string
}

// NewRouter builds an unresolved router; nothing is active until the first
// Navigate.
func NewRouter(session SessionInfo, renderer Renderer, notifier Notifier, logger *zap.Logger, metrics *observability.Metrics) *Router {
	return &Router{
		session:  session,
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		active:   make(map[View]bool),
	}
}

// Navigate sets the location marker to path. Navigations are serialized;
// each one runs to completion, redirects included, before the next starts.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setLocation(path)
}

// setLocation moves the location marker; the change triggers routing
// re-evaluation, mirroring a hashchange event.
func (r *Router) setLocation(path string) {
	r.location = path
	r.onLocationChanged()
}

func (r *Router) onLocationChanged() {
	view := Resolve(r.location)
	r.logger.Debug("navigating", zap.String("path", r.location), zap.String("view", string(view)))

	decision := Decide(view, r.session)
	if !decision.Allow {
		r.logger.Info("navigation denied",
			zap.String("view", string(view)),
			zap.String("redirect", decision.Target))
		r.metrics.RecordDenial(string(view), decision.Reason)
		r.notifier.Notify(NoticeWarning, decision.Reason)
		r.setLocation(decision.Target)
		return
	}

	for v := range r.active {
		r.active[v] = false
	}
	r.active[view] = true
	r.current = view
	r.resolved = true
	r.title = PageTitle(view)
	r.metrics.RecordNavigation(string(view))
	r.renderer.Render(view)
}

// Location returns the current location marker. After a denied navigation
// this is the redirect target; after an unresolved-path navigation it keeps
// the requested path even though the home view is shown.
func (r *Router) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// CurrentView returns the active view and whether any navigation has
// resolved yet.
func (r *Router) CurrentView() (View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.resolved
}

// IsActive reports whether the given view is the active one.
func (r *Router) IsActive(view View) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active[view]
}

// Title returns the page title for the active view.
func (r *Router) Title() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.title
}

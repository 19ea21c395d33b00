package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NoeTobes/FullStackWebApp/internal/observability"
)

type recordingRenderer struct {
	rendered []View
}

func (r *recordingRenderer) Render(view View) {
	r.rendered = append(r.rendered, view)
}

type recordingNotifier struct {
	messages []string
	levels   []NoticeLevel
}

func (n *recordingNotifier) Notify(level NoticeLevel, message string) {
	n.levels = append(n.levels, level)
	n.messages = append(n.messages, message)
}

func newTestRouter(sess SessionInfo) (*Router, *recordingRenderer, *recordingNotifier) {
	renderer := &recordingRenderer{}
	notifier := &recordingNotifier{}
	router := NewRouter(sess, renderer, notifier, zap.NewNop(), observability.NewMetrics())
	return router, renderer, notifier
}

func TestNavigateRendersAllowedView(t *testing.T) {
	router, renderer, notifier := newTestRouter(anonymous)

	router.Navigate(PathLogin)

	current, resolved := router.CurrentView()
	require.True(t, resolved)
	assert.Equal(t, ViewLogin, current)
	assert.Equal(t, PathLogin, router.Location())
	assert.Equal(t, []View{ViewLogin}, renderer.rendered)
	assert.Empty(t, notifier.messages)
	assert.Equal(t, "Login - Full-Stack App (Student Build)", router.Title())
}

func TestNavigateBeforeFirstNavigationIsUnresolved(t *testing.T) {
	router, _, _ := newTestRouter(anonymous)

	_, resolved := router.CurrentView()
	assert.False(t, resolved)
	assert.Equal(t, "", router.Location())
}

func TestNavigateProtectedWithoutIdentityRedirectsToLogin(t *testing.T) {
	router, renderer, notifier := newTestRouter(anonymous)

	router.Navigate(PathProfile)

	// The redirect re-enters the single entry point and settles before
	// Navigate returns.
	assert.Equal(t, PathLogin, router.Location())
	current, _ := router.CurrentView()
	assert.Equal(t, ViewLogin, current)
	assert.Equal(t, []View{ViewLogin}, renderer.rendered)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, NoticeWarning, notifier.levels[0])
}

func TestNavigateAdminViewAsPlainUserRedirectsHome(t *testing.T) {
	router, renderer, _ := newTestRouter(plainUser)

	router.Navigate(PathAccounts)

	assert.Equal(t, PathHome, router.Location())
	current, _ := router.CurrentView()
	assert.Equal(t, ViewHome, current)
	assert.Equal(t, []View{ViewHome}, renderer.rendered)
}

func TestNavigateAdminViewAsAdminAllows(t *testing.T) {
	router, renderer, notifier := newTestRouter(adminUser)

	router.Navigate(PathEmployees)

	assert.Equal(t, PathEmployees, router.Location())
	assert.Equal(t, []View{ViewEmployees}, renderer.rendered)
	assert.Empty(t, notifier.messages)
}

func TestNavigateUnknownPathFallsBackToHomeSilently(t *testing.T) {
	router, renderer, notifier := newTestRouter(anonymous)

	router.Navigate("/no-such-page")

	// The home view is shown but the location marker keeps the requested
	// path; no notice is raised for unknown routes.
	assert.Equal(t, "/no-such-page", router.Location())
	current, _ := router.CurrentView()
	assert.Equal(t, ViewHome, current)
	assert.Equal(t, []View{ViewHome}, renderer.rendered)
	assert.Empty(t, notifier.messages)
}

func TestNavigateStripsQueryComponent(t *testing.T) {
	router, renderer, _ := newTestRouter(anonymous)

	router.Navigate("/register?step=1")

	current, _ := router.CurrentView()
	assert.Equal(t, ViewRegister, current)
	assert.Equal(t, []View{ViewRegister}, renderer.rendered)
}

func TestRepeatedNavigationReRenders(t *testing.T) {
	router, renderer, _ := newTestRouter(anonymous)

	router.Navigate(PathHome)
	router.Navigate(PathHome)

	assert.Equal(t, []View{ViewHome, ViewHome}, renderer.rendered)
}

func TestNavigateDeactivatesPreviousView(t *testing.T) {
	router, _, _ := newTestRouter(anonymous)

	router.Navigate(PathHome)
	router.Navigate(PathLogin)

	assert.False(t, router.IsActive(ViewHome))
	assert.True(t, router.IsActive(ViewLogin))
}

func TestDenialRecordsMetrics(t *testing.T) {
	renderer := &recordingRenderer{}
	notifier := &recordingNotifier{}
	metrics := observability.NewMetrics()
	router := NewRouter(anonymous, renderer, notifier, zap.NewNop(), metrics)

	router.Navigate(PathProfile)

	assert.Equal(t, int64(1), metrics.DenialCount(string(ViewProfile), "Please log in to continue"))
	assert.Equal(t, int64(1), metrics.NavigationCount(string(ViewLogin)))
}

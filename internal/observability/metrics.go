package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu              sync.Mutex
	requestCount    map[string]int64
	errorCount      map[string]int64
	navigationCount map[string]int64
	denialCount     map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:    make(map[string]int64),
		errorCount:      make(map[string]int64),
		navigationCount: make(map[string]int64),
		denialCount:     make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordNavigation counts view activations by view id.
func (m *Metrics) RecordNavigation(view string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navigationCount[view]++
}

// RecordDenial counts access-policy redirects by view id.
func (m *Metrics) RecordDenial(view, reason string) {
	if m == nil {
		return
	}
	key := view + "|" + reason
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denialCount[key]++
}

// NavigationCount returns the activation count for a view id.
func (m *Metrics) NavigationCount(view string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.navigationCount[view]
}

// DenialCount returns the denial count for a view id and reason.
func (m *Metrics) DenialCount(view, reason string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.denialCount[view+"|"+reason]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}

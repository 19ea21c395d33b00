package view

import (
	"sync"

	"github.com/NoeTobes/FullStackWebApp/internal/routing"
)

// Notice is a transient toast message.
type Notice struct {
	Level   routing.NoticeLevel
	Message string
}

// ToastCenter collects notices until the next paint drains them.
type ToastCenter struct {
	mu      sync.Mutex
	notices []Notice
}

// NewToastCenter returns an empty toast center.
func NewToastCenter() *ToastCenter {
	return &ToastCenter{}
}

// Notify queues a notice. Implements routing.Notifier.
func (t *ToastCenter) Notify(level routing.NoticeLevel, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notices = append(t.notices, Notice{Level: level, Message: message})
}

// Drain returns all queued notices and clears the queue.
func (t *ToastCenter) Drain() []Notice {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.notices
	t.notices = nil
	return out
}

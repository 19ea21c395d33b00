// Package session holds the currently authenticated identity. There is
// exactly one session per process, created empty at startup.
package session

import (
	"sync"

	"github.com/NoeTobes/FullStackWebApp/internal/domain"
)

// AccountFinder looks up accounts by their login key.
type AccountFinder interface {
	FindAccountByEmail(email string) (*domain.Account, bool)
}

// Session is the current identity holder. The identity is a read-only view
// onto a record-store account, not a copy.
type Session struct {
	mu       sync.RWMutex
	identity *domain.Account
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Set replaces the current identity. Callers are responsible for recomputing
// any identity-dependent UI chrome afterwards.
func (s *Session) Set(identity *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
}

// Clear drops the current identity.
func (s *Session) Clear() {
	s.Set(nil)
}

// Identity returns the current identity, if any.
func (s *Session) Identity() (*domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.identity != nil
}

// IsAuthenticated reports whether an identity is present.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Identity()
	return ok
}

// IsAdmin reports whether the current identity carries the admin role.
func (s *Session) IsAdmin() bool {
	identity, ok := s.Identity()
	return ok && identity.IsAdmin()
}

// Restore rebuilds the session from a persisted lookup key. Only verified
// accounts restore; on failure the caller should discard the stale key.
func (s *Session) Restore(lookupKey string, finder AccountFinder) (*domain.Account, bool) {
	account, ok := finder.FindAccountByEmail(lookupKey)
	if !ok || !account.Verified {
		return nil, false
	}
	s.Set(account)
	return account, true
}

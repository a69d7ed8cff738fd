package backoffice

import (
	"sync"
	"time"
)

// SessionTTL is how long a login remains valid. It is never refreshed on
// activity; expiry is the only way a session ends besides an explicit Clear.
const SessionTTL = 24 * time.Hour

// Session holds the bearer credential and the signed-in user. Both are set
// atomically at login. Components other than the login flow treat it as
// read-only.
type Session struct {
	mu        sync.RWMutex
	token     string
	user      User
	expiresAt time.Time

	now func() time.Time
}

func NewSession() *Session {
	return &Session{now: time.Now}
}

// Init installs the credential and user together, stamping the expiry.
func (s *Session) Init(token string, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.expiresAt = s.now().Add(SessionTTL)
}

// Token returns the bearer token if the session is live.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.now().After(s.expiresAt) {
		return "", false
	}
	return s.token, true
}

// User returns the signed-in user if the session is live.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.now().After(s.expiresAt) {
		return User{}, false
	}
	return s.user, true
}

// ExpiresAt returns when the session lapses.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Clear tears the session down.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = User{}
	s.expiresAt = time.Time{}
}

package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/quickcommerce/crm-portal/internal/domain"
)

// sessionKey is the snapshot key for the authentication slice.
const sessionKey = "auth"

// SessionStore owns the portal's single authentication state. The evaluator
// writes it on successful login; logout and the reset flow are the only
// other mutations.
type SessionStore struct {
	mu      sync.RWMutex
	session domain.Session
	persist *FileStore
	logger  *zap.Logger
}

// NewSessionStore rehydrates the session from its persisted snapshot, if
// any, so a restart resumes the previous sign-in state.
func NewSessionStore(persist *FileStore, logger *zap.Logger) (*SessionStore, error) {
	s := &SessionStore{persist: persist, logger: logger}

	var snap domain.Session
	found, err := persist.Load(sessionKey, &snap)
	if err != nil {
		return nil, err
	}
	if found {
		s.session = snap
	}
	return s, nil
}

// Establish records a successful authentication.
func (s *SessionStore) Establish(identity domain.Identity, temporary bool) {
	s.mu.Lock()
	s.session = domain.Session{
		IsAuthenticated:     true,
		User:                &identity,
		IsTemporaryPassword: temporary,
	}
	s.mu.Unlock()
	s.save()
}

// Logout resets the session to its empty state.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()
	s.save()
}

// ClearTemporary drops the temporary-password obligation, leaving the
// identity intact.
func (s *SessionStore) ClearTemporary() {
	s.mu.Lock()
	s.session.IsTemporaryPassword = false
	s.mu.Unlock()
	s.save()
}

// Snapshot returns a value copy of the current session.
func (s *SessionStore) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.session
	if s.session.User != nil {
		user := *s.session.User
		snap.User = &user
	}
	return snap
}

func (s *SessionStore) save() {
	snap := s.Snapshot()
	if err := s.persist.Save(sessionKey, snap); err != nil {
		s.logger.Error("persist session snapshot", zap.Error(err))
	}
}

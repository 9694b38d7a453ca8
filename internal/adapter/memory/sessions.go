// Package memory provides the in-memory stores for onboarding state.
// Sessions and correlations live for the life of the process only; a
// restart drops them and members restart the flow from first contact.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// SessionStore keeps live onboarding sessions keyed by member ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*domain.Session)}
}

// Create stores a new session. Returns domain.ErrAlreadyExists when a live
// session exists for the same member.
func (s *SessionStore) Create(_ context.Context, sess *domain.Session) error {
	if sess == nil || sess.MemberID == "" {
		return domain.NewValidationError("member_id", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.MemberID]; ok {
		return fmt.Errorf("session for %s: %w", sess.MemberID, domain.ErrAlreadyExists)
	}

	cp := sess.Clone()
	if cp.Fields == nil {
		cp.Fields = make(map[string]string)
	}
	now := time.Now().UTC()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now

	s.sessions[sess.MemberID] = cp
	return nil
}

// Get returns a copy of the member's session, or domain.ErrNotFound.
func (s *SessionStore) Get(_ context.Context, memberID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[memberID]
	if !ok {
		return nil, fmt.Errorf("session for %s: %w", memberID, domain.ErrNotFound)
	}
	return sess.Clone(), nil
}

// Update applies mutate to the member's session under the store lock.
// The mutator runs on a copy; the copy replaces the stored session only when
// mutate returns nil, so concurrent readers never observe partial writes.
// Returns the updated session.
func (s *SessionStore) Update(_ context.Context, memberID string, mutate func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[memberID]
	if !ok {
		return nil, fmt.Errorf("session for %s: %w", memberID, domain.ErrNotFound)
	}

	cp := sess.Clone()
	if err := mutate(cp); err != nil {
		return nil, err
	}
	cp.UpdatedAt = time.Now().UTC()
	s.sessions[memberID] = cp

	return cp.Clone(), nil
}

// Delete removes the member's session. Returns domain.ErrNotFound when no
// session exists.
func (s *SessionStore) Delete(_ context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[memberID]; !ok {
		return fmt.Errorf("session for %s: %w", memberID, domain.ErrNotFound)
	}
	delete(s.sessions, memberID)
	return nil
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

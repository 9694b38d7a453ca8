package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// CorrelationStore links contact emails to members and their channels.
// Entries persist for the life of the process; there is no removal during
// normal operation.
type CorrelationStore struct {
	mu       sync.RWMutex
	byEmail  map[string]domain.Correlation
	byMember map[string]string // member ID -> email
}

// NewCorrelationStore creates an empty correlation store.
func NewCorrelationStore() *CorrelationStore {
	return &CorrelationStore{
		byEmail:  make(map[string]domain.Correlation),
		byMember: make(map[string]string),
	}
}

// Link records the email ↔ member association. Linking the same email to the
// same member again is a no-op (the channel is refreshed); linking it to a
// different member returns domain.ErrConflict.
func (s *CorrelationStore) Link(_ context.Context, c domain.Correlation) error {
	if c.Email == "" || c.MemberID == "" {
		return domain.NewValidationError("correlation", "email and member_id required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byEmail[c.Email]; ok && existing.MemberID != c.MemberID {
		return fmt.Errorf("email %s already linked to another member: %w", c.Email, domain.ErrConflict)
	}

	s.byEmail[c.Email] = c
	s.byMember[c.MemberID] = c.Email
	return nil
}

// ByEmail returns the correlation for the given email, or domain.ErrNotFound.
func (s *CorrelationStore) ByEmail(_ context.Context, email string) (*domain.Correlation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("correlation for %s: %w", email, domain.ErrNotFound)
	}
	return &c, nil
}

// ByMember returns the correlation for the given member, or domain.ErrNotFound.
func (s *CorrelationStore) ByMember(_ context.Context, memberID string) (*domain.Correlation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.byMember[memberID]
	if !ok {
		return nil, fmt.Errorf("correlation for member %s: %w", memberID, domain.ErrNotFound)
	}
	c := s.byEmail[email]
	return &c, nil
}

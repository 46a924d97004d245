package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// TokenStore is an in-memory store.TokenStore.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*domain.MobileToken
	Err    error
}

var _ store.TokenStore = (*TokenStore)(nil)

// NewTokenStore creates an empty TokenStore.
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: map[uuid.UUID]*domain.MobileToken{}}
}

func (s *TokenStore) insert(now time.Time, tokens []*domain.MobileToken) {
	for _, t := range tokens {
		t.CreatedAt = now.UTC()
		cp := *t
		s.tokens[t.ID] = &cp
	}
}

func (s *TokenStore) revokeWhere(now time.Time, match func(*domain.MobileToken) bool) int64 {
	var n int64
	for _, t := range s.tokens {
		if t.RevokedAt == nil && match(t) {
			at := now.UTC()
			t.RevokedAt = &at
			n++
		}
	}
	return n
}

// ReplaceDevice implements store.TokenStore.
func (s *TokenStore) ReplaceDevice(_ context.Context, staffID int64, device string, now time.Time, tokens ...*domain.MobileToken) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokeWhere(now, func(t *domain.MobileToken) bool {
		return t.StaffID == staffID && t.DeviceName == device
	})
	s.insert(now, tokens)
	return nil
}

// Rotate implements store.TokenStore.
func (s *TokenStore) Rotate(_ context.Context, oldPair uuid.UUID, now time.Time, tokens ...*domain.MobileToken) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revokeWhere(now, func(t *domain.MobileToken) bool { return t.PairID == oldPair }) == 0 {
		return fmt.Errorf("%w: token pair %s already revoked", store.ErrConflict, oldPair)
	}
	s.insert(now, tokens)
	return nil
}

// GetByID implements store.TokenStore. It returns a copy.
func (s *TokenStore) GetByID(_ context.Context, id uuid.UUID) (*domain.MobileToken, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[id]
	if !ok {
		return nil, store.ErrTokenNotFound
	}
	cp := *t
	return &cp, nil
}

// RevokePair implements store.TokenStore.
func (s *TokenStore) RevokePair(_ context.Context, pairID uuid.UUID, now time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokeWhere(now, func(t *domain.MobileToken) bool { return t.PairID == pairID })
	return nil
}

// RevokeAll implements store.TokenStore.
func (s *TokenStore) RevokeAll(_ context.Context, staffID int64, now time.Time) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revokeWhere(now, func(t *domain.MobileToken) bool { return t.StaffID == staffID }), nil
}

// TouchLastUsed implements store.TokenStore.
func (s *TokenStore) TouchLastUsed(_ context.Context, id uuid.UUID, at time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tokens[id]; ok {
		at = at.UTC()
		t.LastUsedAt = &at
	}
	return nil
}

// PruneExpired implements store.TokenStore.
func (s *TokenStore) PruneExpired(_ context.Context, cutoff time.Time) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, t := range s.tokens {
		if t.ExpiresAt.Before(cutoff) || (t.RevokedAt != nil && t.RevokedAt.Before(cutoff)) {
			delete(s.tokens, id)
			n++
		}
	}
	return n, nil
}

// Seed stores tokens as they are, without touching CreatedAt.
func (s *TokenStore) Seed(tokens ...*domain.MobileToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tokens {
		cp := *t
		s.tokens[t.ID] = &cp
	}
}

// Count returns how many tokens are stored, revoked or not.
func (s *TokenStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

// Live returns the unrevoked tokens of a staff member.
func (s *TokenStore) Live(staffID int64) []*domain.MobileToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.MobileToken
	for _, t := range s.tokens {
		if t.StaffID == staffID && t.RevokedAt == nil {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out
}

// Package session is the client-side state store: auth token, cached
// profile, the demo credential map, and the single latest-results slot. It
// stands in for browser-local storage.
package session

import (
	"context"
	"sync"

	"startify/internal/domain"
)

// MemoryStore is the in-memory SessionRepository. It is the default for
// tests and for runs that do not want a state file on disk.
type MemoryStore struct {
	mu          sync.Mutex
	token       string
	profile     *domain.Profile
	credentials map[string]string
	result      *domain.GenerationResult
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{credentials: make(map[string]string)}
}

func (s *MemoryStore) AuthToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", domain.ErrNotFound
	}
	return s.token, nil
}

func (s *MemoryStore) SetAuthToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Profile(ctx context.Context) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, domain.ErrNotFound
	}
	p := *s.profile
	return &p, nil
}

func (s *MemoryStore) SetProfile(ctx context.Context, p *domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.profile = nil
		return nil
	}
	cp := *p
	s.profile = &cp
	return nil
}

func (s *MemoryStore) Credential(ctx context.Context, email string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	password, ok := s.credentials[email]
	if !ok {
		return "", domain.ErrNotFound
	}
	return password, nil
}

func (s *MemoryStore) SetCredential(ctx context.Context, email, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[email] = password
	return nil
}

func (s *MemoryStore) LatestResult(ctx context.Context) (*domain.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, domain.ErrNotFound
	}
	return s.result, nil
}

func (s *MemoryStore) SetLatestResult(ctx context.Context, r *domain.GenerationResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = r
	return nil
}

func (s *MemoryStore) ClearLatestResult(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
	return nil
}

var _ domain.SessionRepository = (*MemoryStore)(nil)

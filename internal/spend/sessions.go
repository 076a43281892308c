package spend

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Sessions hands out one Service per signed-in user, loading the record
// list on first use. A store instance serves a single user session; the
// map only exists so the HTTP shell can host more than one.
type Sessions struct {
	repo  Repository
	rates RateProvider

	mu     sync.Mutex
	active map[uuid.UUID]*Service
}

func NewSessions(repo Repository, rates RateProvider) *Sessions {
	return &Sessions{
		repo:   repo,
		rates:  rates,
		active: make(map[uuid.UUID]*Service),
	}
}

func (s *Sessions) For(ctx context.Context, userID uuid.UUID) (*Service, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	s.mu.Lock()
	svc, ok := s.active[userID]
	s.mu.Unlock()

	if ok {
		return svc, nil
	}

	svc = NewService(s.repo, s.rates, userID)
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if existing, ok := s.active[userID]; ok {
		svc = existing
	} else {
		s.active[userID] = svc
	}
	s.mu.Unlock()

	return svc, nil
}

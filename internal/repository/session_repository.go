package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/raghuvanshmani-code/MentorLink/internal/model"
)

var (
	ErrSessionMissing    = errors.New("session does not exist")
	ErrRatingExists      = errors.New("session already has a rating")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) (*model.Session, error)
	FindByIDForUser(ctx context.Context, sessionID, userID string) (*model.Session, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Session, error)
	AttachRating(ctx context.Context, sessionID string, rating *model.Rating) error
	UpdateStatus(ctx context.Context, sessionID string, next model.SessionStatus) error
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions []*model.Session
}

// NewMemorySessionRepository builds a session store over the given seed
// slice. Seed order is preserved; new sessions are inserted at the head, so
// the store reads most-recent-first.
func NewMemorySessionRepository(seed []*model.Session) SessionRepository {
	r := &memorySessionRepository{sessions: make([]*model.Session, 0, len(seed))}
	for _, s := range seed {
		r.sessions = append(r.sessions, cloneSession(s))
	}
	return r
}

func (r *memorySessionRepository) Create(ctx context.Context, session *model.Session) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneSession(session)
	r.sessions = append([]*model.Session{stored}, r.sessions...)

	return cloneSession(stored), nil
}

// FindByIDForUser returns (nil, nil) both when no session has the id and
// when the session belongs to someone else. Callers cannot tell the two
// apart.
func (r *memorySessionRepository) FindByIDForUser(ctx context.Context, sessionID, userID string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.ID == sessionID && s.UserID == userID {
			return cloneSession(s), nil
		}
	}

	return nil, nil
}

func (r *memorySessionRepository) ListByUserID(ctx context.Context, userID string) ([]model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []model.Session{}
	for _, s := range r.sessions {
		if s.UserID == userID {
			result = append(result, *cloneSession(s))
		}
	}

	return result, nil
}

// AttachRating re-checks for an existing rating under the write lock, so a
// session cannot be rated twice by concurrent callers.
func (r *memorySessionRepository) AttachRating(ctx context.Context, sessionID string, rating *model.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.findLocked(sessionID)
	if s == nil {
		return ErrSessionMissing
	}
	if s.Rating != nil {
		return ErrRatingExists
	}

	cp := *rating
	s.Rating = &cp

	return nil
}

func (r *memorySessionRepository) UpdateStatus(ctx context.Context, sessionID string, next model.SessionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.findLocked(sessionID)
	if s == nil {
		return ErrSessionMissing
	}
	if !s.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	s.Status = next

	return nil
}

func (r *memorySessionRepository) findLocked(sessionID string) *model.Session {
	for _, s := range r.sessions {
		if s.ID == sessionID {
			return s
		}
	}
	return nil
}

func cloneSession(s *model.Session) *model.Session {
	cp := *s
	if s.Rating != nil {
		rcp := *s.Rating
		cp.Rating = &rcp
	}
	return &cp
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/raghuvanshmani-code/MentorLink/internal/events"
	"github.com/raghuvanshmani-code/MentorLink/internal/model"
	"github.com/raghuvanshmani-code/MentorLink/internal/repository"
)

// User-facing messages, surfaced verbatim by the API.
var (
	ErrSessionNotFound = errors.New("Session not found or you do not own this session.")
	ErrAlreadyRated    = errors.New("This session has already been rated.")
	ErrNotRatable      = errors.New("Only completed sessions can be rated.")
)

type RatingService interface {
	RateSession(ctx context.Context, sessionID, userID string, score int, feedback *string) (*model.Rating, error)
}

type ratingService struct {
	sessionRepo repository.SessionRepository
	mentorRepo  repository.MentorRepository
	publisher   events.EventPublisher
}

func NewRatingService(sessionRepo repository.SessionRepository, mentorRepo repository.MentorRepository, pub events.EventPublisher) RatingService {
	return &ratingService{
		sessionRepo: sessionRepo,
		mentorRepo:  mentorRepo,
		publisher:   pub,
	}
}

// RateSession validates in a fixed order: ownership, then double-rating,
// then status. A session is ratable exactly once, and only while completed.
func (s *ratingService) RateSession(ctx context.Context, sessionID, userID string, score int, feedback *string) (*model.Rating, error) {
	session, err := s.sessionRepo.FindByIDForUser(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.Rating != nil {
		return nil, ErrAlreadyRated
	}
	if session.Status != model.StatusCompleted {
		return nil, ErrNotRatable
	}

	rating := &model.Rating{
		ID:        "rating-" + uuid.NewString(),
		SessionID: session.ID,
		Rating:    score,
		Feedback:  feedback,
	}

	if err := s.sessionRepo.AttachRating(ctx, session.ID, rating); err != nil {
		if errors.Is(err, repository.ErrRatingExists) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	// The rating is committed at this point. A missing mentor only skips the
	// aggregate update inside the repository.
	if err := s.mentorRepo.ApplyRating(ctx, session.MentorID, score); err != nil {
		return nil, err
	}

	go s.publisher.PublishSessionRated(session.ID, session.MentorID, score)

	return rating, nil
}

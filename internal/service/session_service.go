package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/raghuvanshmani-code/MentorLink/internal/contact"
	"github.com/raghuvanshmani-code/MentorLink/internal/events"
	"github.com/raghuvanshmani-code/MentorLink/internal/model"
	"github.com/raghuvanshmani-code/MentorLink/internal/repository"
)

var ErrMentorNotFound = errors.New("Mentor not found")

// CreateSessionResult is what a booking request hands back to the caller:
// the new session id plus the WhatsApp link that continues the conversation
// with the mentor outside this system.
type CreateSessionResult struct {
	SessionID   string `json:"session_id"`
	ContactLink string `json:"contact_link"`
}

type SessionService interface {
	CreateSession(ctx context.Context, mentorID, userID, userName string) (*CreateSessionResult, error)
	ListUserSessions(ctx context.Context, userID string) ([]model.Session, error)
	GetSession(ctx context.Context, sessionID, userID string) (*model.Session, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	mentorRepo  repository.MentorRepository
	publisher   events.EventPublisher
}

func NewSessionService(sessionRepo repository.SessionRepository, mentorRepo repository.MentorRepository, pub events.EventPublisher) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		mentorRepo:  mentorRepo,
		publisher:   pub,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, mentorID, userID, userName string) (*CreateSessionResult, error) {
	mentor, err := s.mentorRepo.FindByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	session := &model.Session{
		ID:         "session-" + uuid.NewString(),
		MentorID:   mentor.ID,
		MentorName: mentor.Name,
		UserID:     userID,
		UserName:   userName,
		Status:     model.StatusRequested,
		CreatedAt:  time.Now(),
	}

	created, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishSessionCreated(created)

	return &CreateSessionResult{
		SessionID:   created.ID,
		ContactLink: contact.WhatsAppLink(mentor.Phone, mentor.Name, userName, created.ID),
	}, nil
}

func (s *sessionService) ListUserSessions(ctx context.Context, userID string) ([]model.Session, error) {
	return s.sessionRepo.ListByUserID(ctx, userID)
}

// GetSession returns (nil, nil) when the session does not exist or belongs
// to a different user. Absence is a result, not an error.
func (s *sessionService) GetSession(ctx context.Context, sessionID, userID string) (*model.Session, error) {
	return s.sessionRepo.FindByIDForUser(ctx, sessionID, userID)
}

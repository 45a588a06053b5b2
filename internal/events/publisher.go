package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/raghuvanshmani-code/MentorLink/internal/model"
)

type EventPublisher interface {
	PublishSessionCreated(session *model.Session) error
	PublishSessionRated(sessionID, mentorID string, rating int) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type SessionCreatedEvent struct {
	EventType string    `json:"event_type"`
	SessionID string    `json:"session_id"`
	MentorID  string    `json:"mentor_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionRatedEvent struct {
	EventType string    `json:"event_type"`
	SessionID string    `json:"session_id"`
	MentorID  string    `json:"mentor_id"`
	Rating    int       `json:"rating"`
	RatedAt   time.Time `json:"rated_at"`
}

func (p *NatsPublisher) PublishSessionCreated(session *model.Session) error {
	event := SessionCreatedEvent{
		EventType: "session.created",
		SessionID: session.ID,
		MentorID:  session.MentorID,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
	}

	return p.publish("session.created", event)
}

func (p *NatsPublisher) PublishSessionRated(sessionID, mentorID string, rating int) error {
	event := SessionRatedEvent{
		EventType: "session.rated",
		SessionID: sessionID,
		MentorID:  mentorID,
		Rating:    rating,
		RatedAt:   time.Now(),
	}

	return p.publish("session.rated", event)
}

func (p *NatsPublisher) publish(subject string, event any) error {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		log.Printf("Error marshalling event JSON: %v", err)
		return err
	}

	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	log.Printf("Published event to NATS on subject '%s'", subject)

	return nil
}

// NoopPublisher stands in when no broker is configured; events are dropped.
type NoopPublisher struct{}

func NewNoopPublisher() EventPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishSessionCreated(*model.Session) error { return nil }

func (NoopPublisher) PublishSessionRated(string, string, int) error { return nil }

package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/nats-io/nats.go"

	"github.com/raghuvanshmani-code/MentorLink/internal/model"
	"github.com/raghuvanshmani-code/MentorLink/internal/repository"
)

const (
	lifecycleSubject = "session.lifecycle.*"
	dlqSubject       = "session.lifecycle.failed"
)

// SessionLifecycleEvent is published by the payment/admin path when it
// confirms, completes, or cancels a session. This service applies the
// transition as an already-settled fact; it never initiates one.
type SessionLifecycleEvent struct {
	EventType string              `json:"event_type"`
	SessionID string              `json:"session_id"`
	Status    model.SessionStatus `json:"status"`
}

type LifecycleSubscriber struct {
	natsConn    *nats.Conn
	sessionRepo repository.SessionRepository
}

func NewLifecycleSubscriber(natsURL string, sessionRepo repository.SessionRepository) (*LifecycleSubscriber, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, err
	}
	log.Println("Lifecycle subscriber connected to NATS.")

	subscriber := &LifecycleSubscriber{
		natsConn:    nc,
		sessionRepo: sessionRepo,
	}

	subscriber.subscribeToLifecycleEvents()

	return subscriber, nil
}

func (s *LifecycleSubscriber) subscribeToLifecycleEvents() {
	_, err := s.natsConn.Subscribe(lifecycleSubject, func(msg *nats.Msg) {
		var event SessionLifecycleEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("Failed to unmarshal lifecycle event: %v", err)
			return
		}

		log.Printf("Lifecycle event received: session %s -> %s", event.SessionID, event.Status)

		err := s.sessionRepo.UpdateStatus(context.Background(), event.SessionID, event.Status)
		if err == nil {
			return
		}

		// Unknown sessions and illegal transitions will not heal on retry;
		// dead-letter them for inspection.
		if errors.Is(err, repository.ErrSessionMissing) || errors.Is(err, repository.ErrInvalidTransition) {
			log.Printf("Rejected lifecycle event for session %s: %v", event.SessionID, err)
		} else {
			log.Printf("Failed applying lifecycle event for session %s: %v", event.SessionID, err)
		}

		if err := s.natsConn.Publish(dlqSubject, msg.Data); err != nil {
			log.Printf("Failed to publish to DLQ '%s': %v", dlqSubject, err)
		} else {
			log.Printf("Published failed lifecycle event to DLQ '%s'", dlqSubject)
		}
	})
	if err != nil {
		log.Printf("Failed to subscribe to lifecycle events: %v", err)
	} else {
		log.Printf("Lifecycle subscriber listening on '%s'", lifecycleSubject)
	}
}

package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raghuvanshmani-code/MentorLink/internal/events"
	"github.com/raghuvanshmani-code/MentorLink/internal/model"
)

func TestSessionCreatedEvent_Marshal(t *testing.T) {
	ev := events.SessionCreatedEvent{
		EventType: "session.created",
		SessionID: "session-abc",
		MentorID:  "mentor-1",
		UserID:    "user-123",
		CreatedAt: time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "session.created", decoded["event_type"])
	require.Equal(t, "mentor-1", decoded["mentor_id"])
}

func TestSessionRatedEvent_Marshal(t *testing.T) {
	ev := events.SessionRatedEvent{
		EventType: "session.rated",
		SessionID: "session-abc",
		MentorID:  "mentor-1",
		Rating:    5,
		RatedAt:   time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "session.rated", decoded["event_type"])
	require.Equal(t, float64(5), decoded["rating"])
}

func TestSessionLifecycleEvent_Unmarshal(t *testing.T) {
	raw := []byte(`{"event_type":"session.lifecycle.paid","session_id":"session-3","status":"paid"}`)

	var ev events.SessionLifecycleEvent
	require.NoError(t, json.Unmarshal(raw, &ev))
	require.Equal(t, "session-3", ev.SessionID)
	require.Equal(t, model.StatusPaid, ev.Status)
}

func TestNoopPublisher(t *testing.T) {
	p := events.NewNoopPublisher()
	require.NoError(t, p.PublishSessionCreated(&model.Session{ID: "session-abc"}))
	require.NoError(t, p.PublishSessionRated("session-abc", "mentor-1", 5))
}

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raghuvanshmani-code/MentorLink/internal/model"
	repo "github.com/raghuvanshmani-code/MentorLink/internal/repository"
)

func newSession(id, userID string, status model.SessionStatus) *model.Session {
	return &model.Session{
		ID:         id,
		MentorID:   "mentor-1",
		MentorName: "Alice Johnson",
		UserID:     userID,
		UserName:   "John Doe",
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

func TestMemorySessionRepository_CreateInsertsAtHead(t *testing.T) {
	r := repo.NewMemorySessionRepository(nil)
	ctx := context.Background()

	_, err := r.Create(ctx, newSession("session-a", "user-123", model.StatusRequested))
	require.NoError(t, err)
	_, err = r.Create(ctx, newSession("session-b", "user-123", model.StatusRequested))
	require.NoError(t, err)

	sessions, err := r.ListByUserID(ctx, "user-123")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "session-b", sessions[0].ID)
	require.Equal(t, "session-a", sessions[1].ID)
}

func TestMemorySessionRepository_FindByIDForUser_AbsenceIsUniform(t *testing.T) {
	r := repo.NewMemorySessionRepository([]*model.Session{
		newSession("session-a", "user-123", model.StatusRequested),
	})
	ctx := context.Background()

	// Unknown id and foreign id must come back as the same value.
	missing, err := r.FindByIDForUser(ctx, "session-nope", "user-123")
	require.NoError(t, err)
	foreign, err := r.FindByIDForUser(ctx, "session-a", "user-456")
	require.NoError(t, err)
	require.Equal(t, missing, foreign)
	require.Nil(t, missing)

	owned, err := r.FindByIDForUser(ctx, "session-a", "user-123")
	require.NoError(t, err)
	require.NotNil(t, owned)
	require.Equal(t, "session-a", owned.ID)
}

func TestMemorySessionRepository_AttachRatingOnce(t *testing.T) {
	r := repo.NewMemorySessionRepository([]*model.Session{
		newSession("session-a", "user-123", model.StatusCompleted),
	})
	ctx := context.Background()

	rating := &model.Rating{ID: "rating-x", SessionID: "session-a", Rating: 5}
	require.NoError(t, r.AttachRating(ctx, "session-a", rating))

	err := r.AttachRating(ctx, "session-a", rating)
	require.ErrorIs(t, err, repo.ErrRatingExists)

	err = r.AttachRating(ctx, "session-nope", rating)
	require.ErrorIs(t, err, repo.ErrSessionMissing)

	s, err := r.FindByIDForUser(ctx, "session-a", "user-123")
	require.NoError(t, err)
	require.NotNil(t, s.Rating)
	require.Equal(t, 5, s.Rating.Rating)
}

func TestMemorySessionRepository_UpdateStatus(t *testing.T) {
	r := repo.NewMemorySessionRepository([]*model.Session{
		newSession("session-a", "user-123", model.StatusRequested),
	})
	ctx := context.Background()

	require.NoError(t, r.UpdateStatus(ctx, "session-a", model.StatusPaid))
	require.NoError(t, r.UpdateStatus(ctx, "session-a", model.StatusCompleted))

	err := r.UpdateStatus(ctx, "session-a", model.StatusCancelled)
	require.ErrorIs(t, err, repo.ErrInvalidTransition)

	err = r.UpdateStatus(ctx, "session-nope", model.StatusPaid)
	require.ErrorIs(t, err, repo.ErrSessionMissing)
}

func TestMemorySessionRepository_HandsOutCopies(t *testing.T) {
	r := repo.NewMemorySessionRepository([]*model.Session{
		newSession("session-a", "user-123", model.StatusRequested),
	})
	ctx := context.Background()

	s, err := r.FindByIDForUser(ctx, "session-a", "user-123")
	require.NoError(t, err)
	s.Status = model.StatusCancelled

	again, err := r.FindByIDForUser(ctx, "session-a", "user-123")
	require.NoError(t, err)
	require.Equal(t, model.StatusRequested, again.Status)
}
